package request

// UserUpdateRequest is a merge-patch on the caller's own profile.
type UserUpdateRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,password"`
}
