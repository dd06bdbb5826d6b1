package model

// PostRef is anything the download path accepts as a reference to a
// post: a bare identifier, a listing summary, or full details. Callers
// normalize a ref to PostDetails exactly once before using it.
type PostRef interface {
	postRef()
}

// PostID is a raw post identifier.
type PostID int

func (PostID) postRef()      {}
func (Post) postRef()        {}
func (PostDetails) postRef() {}
