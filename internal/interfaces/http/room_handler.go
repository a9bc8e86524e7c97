package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/usecase"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
)

// RoomHandler pantalla de habitaciones. El envío del modal es multipart
// (campo name y archivo image opcional).
type RoomHandler struct {
	*ResourceHandler[entity.Room, dto.RoomForm]
	maxImageBytes int64
}

// NewRoomHandler construye el handler. maxImageBytes acota la lectura del archivo.
func NewRoomHandler(uc *usecase.RoomUseCase, maxImageBytes int64) *RoomHandler {
	return &RoomHandler{
		ResourceHandler: NewResourceHandler[entity.Room, dto.RoomForm](uc),
		maxImageBytes:   maxImageBytes,
	}
}

// Register monta las rutas bajo g.
func (h *RoomHandler) Register(g fiber.Router) {
	h.RegisterForm(g)
	g.Post("/submit", h.SubmitMultipart)
	h.RegisterList(g)
}

// SubmitMultipart godoc
// @Summary      Enviar el modal de habitación
// @Tags         rooms
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true   "Nombre"
// @Param        image  formData  file    false  "Imagen (image/*, menor al límite)"
// @Success      200  {object}  dto.NoticeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.NoticeResponse
// @Failure      502  {object}  dto.NoticeResponse
// @Router       /admin/rooms/submit [post]
func (h *RoomHandler) SubmitMultipart(c *fiber.Ctx) error {
	values := dto.RoomForm{Name: c.FormValue("name"), FileName: h.m.Form().Values.FileName}
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return badRequest(c, "INVALID_FILE", "no se pudo leer la imagen")
		}
		defer f.Close()
		// Se lee un byte más que el límite para que la validación detecte el exceso.
		data, err := io.ReadAll(io.LimitReader(f, h.maxImageBytes+1))
		if err != nil {
			return badRequest(c, "INVALID_FILE", "no se pudo leer la imagen")
		}
		values.FileName = fh.Filename
		values.Image = &entity.RoomImage{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return h.submit(c, values)
}
