package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_JSONNeverExposesPasswordHash(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Name:         "Asha",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         RoleFarmer,
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "$2a$10$")
	assert.NotContains(t, string(data), "password")
}

func TestLocation_JSONRoundTrip(t *testing.T) {
	loc := Location{Address: "Headquarters", Longitude: 77.1025, Latitude: 28.7041}

	data, err := json.Marshal(loc)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"address":"Headquarters","coordinates":[77.1025,28.7041]}`, string(data))

	var decoded Location
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, loc, decoded)
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleFarmer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("superuser").Valid())
}
