package auth_test

import (
	"errors"
	"testing"

	"github.com/duopad/duopad/internal/server/api/auth"
	"github.com/stretchr/testify/assert"
)

func TestGenKey(t *testing.T) {

	key, err := auth.GenerateKey()
	assert.NoError(t, err)
	assert.Len(t, key, auth.AutoGenKeyLength)
	assert.Regexp(t, "^[0-9A-Za-z]{16}$", key)

}

func BenchmarkGenKey(b *testing.B) {
	var key string
	var err error
	for i := 0; i < b.N; i++ {
		key, err = auth.GenerateKey()
	}
	assert.NoError(b, err)
	assert.Len(b, key, auth.AutoGenKeyLength)
}

func TestDeriveKey(t *testing.T) {

	type testCase struct {
		name        string
		password    string
		expectedKey []byte
		expectedErr error
	}

	testCases := []testCase{
		{
			name:        "Normal Password",
			password:    "password123",
			expectedKey: []byte{0x71, 0xfc, 0xb6, 0xc4, 0x5f, 0x5, 0xe0, 0x31, 0x2e, 0x28, 0xc9, 0x1b, 0xd7, 0x70, 0x8d, 0x85, 0x8b, 0x90, 0x8a, 0x53, 0x8d, 0x6b, 0x1f, 0xaa, 0xaf, 0xeb, 0xfa, 0xed, 0xc4, 0x8a, 0x9f, 0x35},
		},
		{
			name:        "Simple Password",
			password:    "1",
			expectedKey: []byte{0x29, 0x79, 0x1, 0xe9, 0x1e, 0x22, 0x8f, 0x5a, 0xbd, 0x71, 0x43, 0x8c, 0x3c, 0x52, 0x2a, 0x77, 0xfb, 0xd7, 0x8a, 0x18, 0x0, 0x29, 0x21, 0x3a, 0x42, 0x5f, 0xb7, 0xdb, 0x71, 0x19, 0x8e, 0xba},
		},
		{
			name:        "empty password",
			password:    "",
			expectedKey: []byte{},
			expectedErr: errors.New("Password cannot be empty"),
		},
		{
			name:        "long password",
			password:    "dkfghdfg90d78h350ß8dgfjkdfg#---23489dfg!!!@!@#$$%&/()=",
			expectedKey: []byte{0xce, 0x74, 0x8b, 0xa, 0xfd, 0x2a, 0xe2, 0xf7, 0xde, 0x31, 0xdd, 0x72, 0x19, 0x6e, 0xdb, 0x87, 0x9d, 0xe3, 0x63, 0xc8, 0xeb, 0x9, 0xf1, 0xa3, 0x88, 0xfe, 0xf3, 0xb1, 0xbe, 0xe5, 0x24, 0x36},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			derivedKey, err := auth.DeriveKey(tc.password)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedKey, derivedKey)
		})
	}
}

func TestDeriveSessionKey(t *testing.T) {
	key := make([]byte, 32)
	serverNonce := make([]byte, 32)
	clientNonce := make([]byte, 32)

	for i := range key {
		key[i] = byte(i)
		serverNonce[i] = byte(i + 10)
		clientNonce[i] = byte(i + 20)
	}

	sessionKey := auth.DeriveSessionKey(key, serverNonce, clientNonce)
	assert.Len(t, sessionKey, 32)

	sessionKey2 := auth.DeriveSessionKey(key, serverNonce, clientNonce)
	assert.Equal(t, sessionKey, sessionKey2)

	clientNonce[0] = 99
	sessionKey3 := auth.DeriveSessionKey(key, serverNonce, clientNonce)
	assert.NotEqual(t, sessionKey, sessionKey3)
}
