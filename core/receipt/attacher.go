package receipt

import (
	"context"
	"time"

	"bizdesk.app/bizdesk/core"
)

type Attacher struct {
	store Store
	now   func() time.Time
}

func NewAttacher(store Store) *Attacher {
	return &Attacher{store: store, now: time.Now}
}

// Resolve decides the receipt URL an expense is saved with.
// A new file is validated and uploaded before anything else happens; the
// caller must not write the expense when Resolve fails. remove clears the
// current URL and leaves the stored object in place.
func (a *Attacher) Resolve(ctx context.Context, userID string, current *string, file *File, remove bool) (*string, error) {
	if userID == "" {
		return nil, &core.ValidationError{Msg: ErrLoginRequired.Error(), Err: ErrLoginRequired}
	}

	if file == nil {
		if remove || current == nil || *current == "" {
			return nil, nil
		}
		return current, nil
	}

	if err := Validate(file.ContentType, file.Size); err != nil {
		return nil, err
	}

	body, err := file.Open()
	if err != nil {
		return nil, core.Remote("open receipt", err)
	}
	defer body.Close()

	key := ObjectKey(userID, file.Name, file.ContentType, a.now())
	if err := a.store.Put(ctx, key, body, file.Size, file.ContentType); err != nil {
		return nil, core.Remote("upload receipt", err)
	}

	url := a.store.PublicURL(key)
	return &url, nil
}
