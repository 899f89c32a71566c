// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue string
		wantErr   bool
	}{
		{name: "absent key", body: `{}`, wantSet: false},
		{name: "present string", body: `{"first_name":"Miami"}`, wantSet: true, wantValue: "Miami"},
		{name: "present empty string", body: `{"first_name":""}`, wantSet: true, wantValue: ""},
		{name: "explicit null", body: `{"first_name":null}`, wantSet: true, wantValue: ""},
		{name: "wrong type", body: `{"first_name":5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var update UserUpdate
			err := json.Unmarshal([]byte(tt.body), &update)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			value, set := update.FirstName.Get()
			assert.Equal(t, tt.wantSet, set)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())
	assert.False(t, UserUpdate{Phone: Some("555-0100")}.IsEmpty())
	assert.False(t, UserUpdate{UpdatedDatetime: Some("2024-08-07T22:26:12.111Z")}.IsEmpty())
}

func TestUserUpdate_Fields(t *testing.T) {
	assert.Empty(t, UserUpdate{}.Fields())
	assert.Equal(t,
		[]string{FieldMiddleName, FieldPhone, FieldUpdatedDatetime},
		UserUpdate{
			UpdatedDatetime: Some("2024-08-07T22:26:12Z"),
			Phone:           Some(""),
			MiddleName:      Optional[string]{Set: true},
		}.Fields(),
	)
}

func TestUpdateUserRequest_MarshalOmitsAbsentFields(t *testing.T) {
	req := UpdateUserRequest{
		UserID: "66b3d17ce6d8e2f5b93324d3",
		UserUpdate: UserUpdate{
			FirstName: Some("Miami"),
			Phone:     Some(""),
		},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"66b3d17ce6d8e2f5b93324d3","first_name":"Miami","phone":""}`, string(data))
}

func TestParseUserID(t *testing.T) {
	id, err := ParseUserID("66b3d17ce6d8e2f5b93324d3")
	require.NoError(t, err)
	assert.Equal(t, "66b3d17ce6d8e2f5b93324d3", id.Hex())

	for _, bad := range []string{"", "invalid_user_id", "66b3d17ce6d8e2f5b93324d", "66b3d17ce6d8e2f5b93324dz"} {
		_, err := ParseUserID(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, NotAvailable, info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}
