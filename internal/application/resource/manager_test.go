package resource_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/ports"
	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

type item struct {
	ID      string
	Name    string
	Deleted bool
}

type itemForm struct {
	Name string
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context) ([]item, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, id string, values itemForm) error {
	return m.Called(ctx, id, values).Error(0)
}

func (m *mockStore) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type memAudit struct {
	entries []ports.AuditEntry
}

func (a *memAudit) Record(_ context.Context, e ports.AuditEntry) error {
	a.entries = append(a.entries, e)
	return nil
}

type serverErr struct{ msg string }

func (e serverErr) Error() string         { return "api: 400 " + e.msg }
func (e serverErr) ServerMessage() string { return e.msg }

var seed = []item{
	{ID: "1", Name: "Sala Grande"},
	{ID: "2", Name: "cocina"},
	{ID: "3", Name: "Salón", Deleted: true},
}

func newManager(store *mockStore, mutate ...func(*resource.Options[item, itemForm])) *resource.Manager[item, itemForm] {
	opts := resource.Options[item, itemForm]{
		Resource:     "items",
		Noun:         locale.NounRoom,
		Store:        store,
		ID:           func(i item) string { return i.ID },
		SearchFields: func(i item) []string { return []string{i.Name} },
		ToForm:       func(i item) itemForm { return itemForm{Name: i.Name} },
		Validate: func(f itemForm) validation.FieldErrors {
			if f.Name == "" {
				return validation.FieldErrors{"name": "required"}
			}
			return nil
		},
		Printer: locale.New("en"),
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	return resource.New(opts)
}

func loaded(t *testing.T, store *mockStore, mutate ...func(*resource.Options[item, itemForm])) *resource.Manager[item, itemForm] {
	t.Helper()
	store.On("List", mock.Anything).Return(seed, nil).Once()
	m := newManager(store, mutate...)
	n := m.List(context.Background())
	require.True(t, n.IsZero())
	return m
}

func TestList_FalloConservaDatosPrevios(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	store.On("List", mock.Anything).Return(nil, errors.New("timeout")).Once()

	n := m.List(context.Background())

	assert.Equal(t, notify.LevelError, n.Level)
	assert.Equal(t, "Failed to load room", n.Message)
	snap := m.Snapshot(resource.Page{})
	assert.Len(t, snap.Items, 3)
	assert.False(t, snap.Loading)
}

func TestList_FalloSinDatosPreviosQuedaVacio(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything).Return(nil, errors.New("boom"))
	m := newManager(store)

	m.List(context.Background())

	snap := m.Snapshot(resource.Page{})
	assert.NotNil(t, snap.Items)
	assert.Empty(t, snap.Items)
}

func TestSearch_EsIdempotenteYNoUsaLaRed(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)

	once := m.Search("SAL")
	twice := m.Search("SAL")

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
	store.AssertNumberOfCalls(t, "List", 1)
}

func TestSearch_ConsultaVaciaMuestraTodo(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	m.Search("cocina")
	assert.Len(t, m.Search("  "), 3)
}

func TestSearch_SeMantieneTrasRecargar(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	m.Search("cocina")
	store.On("List", mock.Anything).Return(append(seed, item{ID: "4", Name: "Cocina chica"}), nil).Once()

	m.List(context.Background())

	assert.Len(t, m.Snapshot(resource.Page{}).Items, 2)
}

func TestMatcher_RankOrdenaResultados(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) {
		o.Matcher = func(_ string, fields []string) (int, bool) {
			return -len(fields[0]), true
		}
	})
	got := m.Search("x")
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilter_CombinaConBusqueda(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	m.Filter(func(i item) bool { return !i.Deleted })
	assert.Len(t, m.Search("sal"), 1)
	m.Filter(nil)
	assert.Len(t, m.Search("sal"), 2)
}

func TestOpenEdit_PrecargaValores(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)

	form, err := m.OpenEdit("2")
	require.NoError(t, err)
	assert.True(t, form.Open)
	assert.Equal(t, resource.ModeEdit, form.Mode)
	assert.Equal(t, "cocina", form.Values.Name)

	_, err = m.OpenEdit("zz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_SinModalAbiertoEsError(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	_, err := m.Submit(context.Background(), itemForm{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrFormClosed)
}

func TestSubmit_ValidacionLocalNoLlamaAlBackend(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	m.OpenCreate()

	n, err := m.Submit(context.Background(), itemForm{})

	require.NoError(t, err)
	assert.Equal(t, notify.LevelWarning, n.Level)
	assert.Equal(t, "required", n.Fields["name"])
	assert.True(t, m.Form().Open)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_ExitoCierraModalYRecarga(t *testing.T) {
	store := new(mockStore)
	audit := &memAudit{}
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) { o.Audit = audit })
	m.OpenCreate()
	store.On("Save", mock.Anything, "", itemForm{Name: "Baño"}).Return(nil).Once()
	store.On("List", mock.Anything).Return(append(seed, item{ID: "9", Name: "Baño"}), nil).Once()

	n, err := m.Submit(context.Background(), itemForm{Name: "Baño"})

	require.NoError(t, err)
	assert.Equal(t, notify.LevelSuccess, n.Level)
	assert.Equal(t, "Created room successfully", n.Message)
	assert.False(t, m.Form().Open)
	assert.Len(t, m.Records(), 4)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, ports.ActionCreate, audit.entries[0].Action)
	assert.True(t, audit.entries[0].Success)
	store.AssertExpectations(t)
}

func TestSubmit_FalloMantieneModalConValores(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	_, err := m.OpenEdit("1")
	require.NoError(t, err)
	store.On("Save", mock.Anything, "1", itemForm{Name: "Nuevo"}).Return(serverErr{msg: "name taken"}).Once()

	n, err := m.Submit(context.Background(), itemForm{Name: "Nuevo"})

	require.NoError(t, err)
	assert.Equal(t, notify.LevelError, n.Level)
	assert.Equal(t, "Failed to update room: name taken", n.Message)
	form := m.Form()
	assert.True(t, form.Open)
	assert.False(t, form.Submitting)
	assert.Equal(t, "Nuevo", form.Values.Name)
	store.AssertNumberOfCalls(t, "List", 1)
}

func TestRemove_CancelarNoLlamaALaRedNiCambiaLista(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	before := m.Records()

	token, err := m.Remove("2")
	require.NoError(t, err)
	require.NoError(t, m.Cancel(token))

	assert.Equal(t, before, m.Records())
	assert.Zero(t, m.Pending())
	store.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
	store.AssertNumberOfCalls(t, "List", 1)

	_, err = m.Confirm(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnknownConfirmation)
}

func TestRemove_TokenVenceALas12Horas(t *testing.T) {
	store := new(mockStore)
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) {
		o.Now = func() time.Time { return now }
	})

	viejo, err := m.Remove("1")
	require.NoError(t, err)
	now = now.Add(11 * time.Hour)
	nuevo, err := m.Remove("2")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Pending())

	now = now.Add(2 * time.Hour)

	assert.Equal(t, 1, m.Pending(), "la baja abandonada se descarta")
	_, err = m.Confirm(context.Background(), viejo)
	assert.ErrorIs(t, err, domain.ErrUnknownConfirmation)
	store.AssertNotCalled(t, "Deactivate", mock.Anything, "1")
	require.NoError(t, m.Cancel(nuevo))
}

func TestSubmit_AuditaMonto(t *testing.T) {
	store := new(mockStore)
	audit := &memAudit{}
	price := decimal.RequireFromString("99.90")
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) {
		o.Audit = audit
		o.Amount = func(itemForm) *decimal.Decimal { return &price }
	})
	_, err := m.OpenEdit("1")
	require.NoError(t, err)
	store.On("Save", mock.Anything, "1", itemForm{Name: "Sala"}).Return(nil).Once()
	store.On("List", mock.Anything).Return(seed, nil).Once()

	_, err = m.Submit(context.Background(), itemForm{Name: "Sala"})

	require.NoError(t, err)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, ports.ActionUpdate, audit.entries[0].Action)
	require.NotNil(t, audit.entries[0].Amount)
	assert.True(t, price.Equal(*audit.entries[0].Amount))
}

func TestConfirm_ExitoRecarga(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	token, err := m.Remove("2")
	require.NoError(t, err)
	store.On("Deactivate", mock.Anything, "2").Return(nil).Once()
	store.On("List", mock.Anything).Return(seed[:1], nil).Once()

	n, err := m.Confirm(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "Deleted room successfully", n.Message)
	assert.Len(t, m.Records(), 1)
}

func TestConfirm_LocalRemoveFiltraSinRecargar(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) { o.LocalRemove = true })
	token, _ := m.Remove("1")
	store.On("Deactivate", mock.Anything, "1").Return(nil).Once()

	_, err := m.Confirm(context.Background(), token)

	require.NoError(t, err)
	assert.Len(t, m.Records(), 2)
	store.AssertNumberOfCalls(t, "List", 1)
}

func TestConfirm_FalloNoModificaEstadoLocal(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) { o.LocalRemove = true })
	token, _ := m.Remove("1")
	store.On("Deactivate", mock.Anything, "1").Return(errors.New("500")).Once()

	n, err := m.Confirm(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, notify.LevelError, n.Level)
	assert.Len(t, m.Records(), 3)
}

func TestRemove_CanRemoveRechaza(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store, func(o *resource.Options[item, itemForm]) {
		o.CanRemove = func(i item) error {
			if i.Deleted {
				return domain.ErrConflict
			}
			return nil
		}
	})
	_, err := m.Remove("3")
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = m.Remove("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshot_Paginacion(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)

	p2 := m.Snapshot(resource.Page{Number: 2, Size: 2})
	assert.Equal(t, 3, p2.Total)
	assert.Equal(t, 2, p2.Page)
	require.Len(t, p2.Items, 1)
	assert.Equal(t, "3", p2.Items[0].ID)

	beyond := m.Snapshot(resource.Page{Number: 9, Size: 2})
	assert.Empty(t, beyond.Items)
}

func TestUpdateForm_RequiereModalAbierto(t *testing.T) {
	store := new(mockStore)
	m := loaded(t, store)
	_, err := m.UpdateForm(func(f *itemForm) { f.Name = "x" })
	assert.ErrorIs(t, err, domain.ErrFormClosed)

	m.OpenCreate()
	form, err := m.UpdateForm(func(f *itemForm) { f.Name = "x" })
	require.NoError(t, err)
	assert.Equal(t, "x", form.Values.Name)
}
