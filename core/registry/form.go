package registry

import (
	"context"

	"bizdesk.app/bizdesk/core"
)

type FormState int

const (
	FormClosed FormState = iota
	FormCreating
	FormEditing
)

func (s FormState) String() string {
	switch s {
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	}
	return "closed"
}

// Result is what a successful submit hands back: the stored record and the re-fetched list.
type Result[T Entity] struct {
	Saved T   `json:"data"`
	Items []T `json:"items"`
}

// Form holds the single draft being edited against a registry.
type Form[T Entity] struct {
	registry *Registry[T]
	state    FormState
	editID   uint
	draft    T
}

func NewForm[T Entity](r *Registry[T]) *Form[T] {
	return &Form[T]{registry: r}
}

func (f *Form[T]) State() FormState {
	return f.state
}

// EditID is zero unless the form is editing.
func (f *Form[T]) EditID() uint {
	return f.editID
}

func (f *Form[T]) OpenCreate() {
	f.state = FormCreating
	f.editID = 0
	f.draft = f.registry.Defaults()
}

func (f *Form[T]) OpenEdit(ctx context.Context, id uint) error {
	row, err := f.registry.Get(ctx, id)
	if err != nil {
		return err
	}
	f.state = FormEditing
	f.editID = id
	f.draft = row
	return nil
}

func (f *Form[T]) Draft() *T {
	return &f.draft
}

func (f *Form[T]) Close() {
	var zero T
	f.state = FormClosed
	f.editID = 0
	f.draft = zero
}

// Submit saves the draft and reloads the list narrowed by filter.
// On failure the form stays open with the draft untouched.
func (f *Form[T]) Submit(ctx context.Context, filter string) (Result[T], error) {
	var (
		res   Result[T]
		saved T
		err   error
	)

	switch f.state {
	case FormCreating:
		saved, err = f.registry.Create(ctx, f.draft)
	case FormEditing:
		saved, err = f.registry.Update(ctx, f.editID, f.draft)
	default:
		return res, core.NewValidationError("form is not open")
	}
	if err != nil {
		return res, err
	}

	items, err := f.registry.List(ctx, filter)
	if err != nil {
		return res, err
	}

	f.Close()
	return Result[T]{Saved: saved, Items: items}, nil
}
