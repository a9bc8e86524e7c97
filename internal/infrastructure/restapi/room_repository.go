package restapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo adaptador de /api/rooms.
type RoomRepo struct {
	c *Client
}

// NewRoomRepository construye el adaptador.
func NewRoomRepository(c *Client) *RoomRepo {
	return &RoomRepo{c: c}
}

// List GET /api/rooms.
func (r *RoomRepo) List(ctx context.Context) ([]entity.Room, error) {
	body, err := r.c.get(ctx, "/api/rooms")
	if err != nil {
		return nil, err
	}
	return DecodeCollection[entity.Room](body)
}

// Create POST /api/rooms (multipart: name, image opcional).
func (r *RoomRepo) Create(ctx context.Context, in entity.RoomDraft) error {
	return r.sendMultipart(ctx, http.MethodPost, "/api/rooms", in)
}

// Update PUT /api/rooms/:id (multipart). Sin imagen se conserva la actual.
func (r *RoomRepo) Update(ctx context.Context, id string, in entity.RoomDraft) error {
	return r.sendMultipart(ctx, http.MethodPut, pathf("/api/rooms/%s", id), in)
}

// Deactivate DELETE /api/rooms/:id.
func (r *RoomRepo) Deactivate(ctx context.Context, id string) error {
	return r.c.sendJSON(ctx, http.MethodDelete, pathf("/api/rooms/%s", id), nil)
}

func (r *RoomRepo) sendMultipart(ctx context.Context, method, path string, in entity.RoomDraft) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("name", in.Name); err != nil {
		return fmt.Errorf("api: multipart name: %w", err)
	}
	if in.Image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(in.Image.FileName)))
		h.Set("Content-Type", in.Image.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return fmt.Errorf("api: multipart image: %w", err)
		}
		if _, err := part.Write(in.Image.Data); err != nil {
			return fmt.Errorf("api: multipart image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: cerrar multipart: %w", err)
	}
	_, err := r.c.do(ctx, method, path, &buf, w.FormDataContentType())
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
