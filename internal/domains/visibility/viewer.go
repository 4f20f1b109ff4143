// Package visibility holds the read and mutation rules for blog content:
// which posts a viewer may see, and who may edit or delete a post or comment.
//
// The package is pure: it never touches the database. Services feed it the
// facts they loaded and act on its answers, and the post repository renders
// the same rule to SQL through Predicate.
package visibility

// Viewer là danh tính của người đang gửi request.
// Zero value là anonymous viewer.
type Viewer struct {
	UserID   int64
	Username string
}

// Anonymous trả về viewer chưa đăng nhập
func Anonymous() Viewer {
	return Viewer{}
}

// Authenticated tạo viewer từ user đã xác thực
func Authenticated(userID int64, username string) Viewer {
	return Viewer{UserID: userID, Username: username}
}

func (v Viewer) IsAuthenticated() bool {
	return v.UserID > 0
}

// Is reports whether the viewer is the user with the given id.
// Anonymous viewers are never anyone.
func (v Viewer) Is(userID int64) bool {
	return v.IsAuthenticated() && v.UserID == userID
}
