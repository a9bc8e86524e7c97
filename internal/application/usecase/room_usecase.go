package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// RoomUseCase pantalla de habitaciones. La imagen es opcional; si viene debe
// ser image/* y pesar menos de maxImageBytes.
type RoomUseCase struct {
	*resource.Manager[entity.Room, dto.RoomForm]

	maxImageBytes int64
}

// NewRoomUseCase construye el caso de uso. maxImageBytes <= 0 usa 5MB.
func NewRoomUseCase(repo repository.RoomRepository, maxImageBytes int64, env Env) *RoomUseCase {
	env = env.withDefaults()
	if maxImageBytes <= 0 {
		maxImageBytes = 5 << 20
	}
	uc := &RoomUseCase{maxImageBytes: maxImageBytes}
	uc.Manager = resource.New(resource.Options[entity.Room, dto.RoomForm]{
		Resource:     "rooms",
		Noun:         locale.NounRoom,
		Store:        roomStore{repo: repo},
		ID:           func(r entity.Room) string { return r.ID },
		SearchFields: func(r entity.Room) []string { return []string{r.Name} },
		ToForm: func(r entity.Room) dto.RoomForm {
			return dto.RoomForm{Name: r.Name, FileName: r.FileName}
		},
		Validate: func(f dto.RoomForm) validation.FieldErrors {
			errs := env.Validator.Struct(f)
			if msg := uc.checkImage(env.Printer, f.Image); msg != "" {
				if errs == nil {
					errs = validation.FieldErrors{}
				}
				errs["image"] = msg
			}
			return errs
		},
		Audit:   env.Audit,
		Printer: env.Printer,
		Logger:  env.component("rooms"),
		Now:     env.Now,
	})
	return uc
}

// checkImage devuelve el mensaje de error de la imagen o "" si es aceptable.
func (uc *RoomUseCase) checkImage(p *locale.Printer, img *entity.RoomImage) string {
	if img == nil {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(img.ContentType), "image/") {
		return p.T(locale.MsgImageType)
	}
	if int64(len(img.Data)) >= uc.maxImageBytes {
		return p.T(locale.MsgImageSize, uc.maxImageBytes>>20)
	}
	return ""
}

type roomStore struct {
	repo repository.RoomRepository
}

func (s roomStore) List(ctx context.Context) ([]entity.Room, error) {
	return s.repo.List(ctx)
}

func (s roomStore) Save(ctx context.Context, id string, f dto.RoomForm) error {
	draft := entity.RoomDraft{Name: strings.TrimSpace(f.Name), Image: f.Image}
	if id == "" {
		return s.repo.Create(ctx, draft)
	}
	return s.repo.Update(ctx, id, draft)
}

func (s roomStore) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
