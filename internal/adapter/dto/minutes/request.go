package minutes

// GenerateRequest carries the optional form fields of the upload. The media
// file itself arrives as the multipart "file" part. When kind is empty it is
// inferred from the filename extension.
type GenerateRequest struct {
	Kind string `form:"kind" validate:"omitempty,mediakind"`
}
