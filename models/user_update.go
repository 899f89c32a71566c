// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserUpdate is the typed partial update carried by a PUT /user request.
// Only the whitelisted fields below can ever reach a stored record; any
// other key in the request body is ignored.
type UserUpdate struct {
	FirstName    Optional[string] `json:"first_name,omitzero"`
	MiddleName   Optional[string] `json:"middle_name,omitzero"`
	LastName     Optional[string] `json:"last_name,omitzero"`
	Password     Optional[string] `json:"password,omitzero"`
	Phone        Optional[string] `json:"phone,omitzero"`
	SessionToken Optional[string] `json:"session_token,omitzero"`

	// UpdatedDatetime is kept in its wire form; it is parsed as an
	// ISO-8601 timestamp before any field is merged.
	UpdatedDatetime Optional[string] `json:"updated_datetime,omitzero"`
}

// IsEmpty reports whether no mergeable field is present.
func (u UserUpdate) IsEmpty() bool {
	return !u.FirstName.Set &&
		!u.MiddleName.Set &&
		!u.LastName.Set &&
		!u.Password.Set &&
		!u.Phone.Set &&
		!u.SessionToken.Set &&
		!u.UpdatedDatetime.Set
}

// Stored field names of the mergeable fields. They are both the bson keys
// and the SQL column names.
const (
	FieldFirstName       = "first_name"
	FieldMiddleName      = "middle_name"
	FieldLastName        = "last_name"
	FieldPassword        = "password"
	FieldPhone           = "phone"
	FieldSessionToken    = "session_token"
	FieldUpdatedDatetime = "updated_datetime"
)

// Fields returns the stored names of the present fields in a fixed order.
func (u UserUpdate) Fields() []string {
	present := []struct {
		name string
		set  bool
	}{
		{FieldFirstName, u.FirstName.Set},
		{FieldMiddleName, u.MiddleName.Set},
		{FieldLastName, u.LastName.Set},
		{FieldPassword, u.Password.Set},
		{FieldPhone, u.Phone.Set},
		{FieldSessionToken, u.SessionToken.Set},
		{FieldUpdatedDatetime, u.UpdatedDatetime.Set},
	}

	fields := make([]string, 0, len(present))
	for _, p := range present {
		if p.set {
			fields = append(fields, p.name)
		}
	}

	return fields
}
