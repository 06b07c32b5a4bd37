package model

//User ...
type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Title    *string `json:"title"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
}

// Clone returns a copy of u that shares no memory with it.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	c.Title = cloneString(u.Title)
	c.Bio = cloneString(u.Bio)
	c.Location = cloneString(u.Location)
	c.Website = cloneString(u.Website)

	return &c
}

// Apply copies every provided field of p onto u.
func (u *User) Apply(p UpdateProfileRequest) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Title != nil {
		u.Title = cloneString(p.Title)
	}
	if p.Bio != nil {
		u.Bio = cloneString(p.Bio)
	}
	if p.Location != nil {
		u.Location = cloneString(p.Location)
	}
	if p.Website != nil {
		u.Website = cloneString(p.Website)
	}
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
