package visibility

import "errors"

// Entity là loại nội dung bị mutate
type Entity string

const (
	EntityPost    Entity = "post"
	EntityComment Entity = "comment"
)

// Action là thao tác mutate
type Action string

const (
	// ActionCreate chỉ cần viewer đã đăng nhập, không qua AuthorizeMutation
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Denial cho biết cách từ chối một mutation
type Denial string

const (
	DenialNone            Denial = ""
	DenialUnauthenticated Denial = "unauthenticated"
	DenialNotFound        Denial = "not_found"
	DenialRedirect        Denial = "redirect"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrHidden          = errors.New("not found")
	ErrRedirectToRead  = errors.New("redirect to read view")
)

// Target mô tả mutation cần kiểm tra quyền
type Target struct {
	Entity   Entity
	Action   Action
	AuthorID int64
}

// Decision là kết quả của AuthorizeMutation
type Decision struct {
	Allowed bool
	Denial  Denial
}

// Err trả về sentinel error tương ứng với Denial, nil khi Allowed
func (d Decision) Err() error {
	switch {
	case d.Allowed:
		return nil
	case d.Denial == DenialUnauthenticated:
		return ErrUnauthenticated
	case d.Denial == DenialRedirect:
		return ErrRedirectToRead
	default:
		return ErrHidden
	}
}

// AuthorizeMutation allows a mutation only when the viewer is the author.
// A non-owner editing a post is sent back to the post; every other denial
// is reported as not found so the entity's existence does not leak.
func AuthorizeMutation(v Viewer, t Target) Decision {
	if !v.IsAuthenticated() {
		return Decision{Denial: DenialUnauthenticated}
	}
	if v.Is(t.AuthorID) {
		return Decision{Allowed: true}
	}
	return Decision{Denial: denialFor(t.Entity, t.Action)}
}

func denialFor(e Entity, a Action) Denial {
	if e == EntityPost && a == ActionEdit {
		return DenialRedirect
	}
	return DenialNotFound
}
