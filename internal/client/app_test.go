// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/models"
)

var adminLogin = models.LoginRequest{Email: "admin@example.com", Password: "secret"}

func newTestApp(t *testing.T, withCredentials bool) (*App, *mock.MockAccountAPI, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mock.NewMockAccountAPI(ctrl)

	cfg := &config.ClientConfig{}
	if withCredentials {
		cfg.Email = adminLogin.Email
		cfg.Password = adminLogin.Password
	}

	out := &bytes.Buffer{}
	return NewApp(api, cfg, out, logger.Nop()), api, out
}

func expectLogin(api *mock.MockAccountAPI) *gomock.Call {
	return api.EXPECT().Login(gomock.Any(), adminLogin).
		Return(models.LoginResponse{Message: "Logged in.", Status: models.StatusActive, ID: 1}, nil)
}

func TestApp_Run_Dispatch(t *testing.T) {
	app, _, _ := newTestApp(t, true)

	assert.ErrorIs(t, app.Run(context.Background(), nil), ErrNoCommand)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"explode"}), ErrUnknownCommand)
}

func TestApp_Register(t *testing.T) {
	app, api, out := newTestApp(t, false)

	api.EXPECT().Register(gomock.Any(), models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "pw"}).
		Return(models.RegisterResponse{Message: "Registered.", VerifyURL: "http://localhost/verify.html?token=t"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"register", "Ann", "ann@example.com", "pw"}))
	assert.Contains(t, out.String(), "Registered.")
	assert.Contains(t, out.String(), "verify: http://localhost/verify.html?token=t")

	err := app.Run(context.Background(), []string{"register", "Ann"})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestApp_Verify(t *testing.T) {
	app, api, out := newTestApp(t, false)

	api.EXPECT().Verify(gomock.Any(), "tok").Return(nil)
	api.EXPECT().Verify(gomock.Any(), "bad").Return(adapter.ErrBadRequest)

	require.NoError(t, app.Run(context.Background(), []string{"verify", "tok"}))
	assert.Contains(t, out.String(), "Account verified.")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"verify", "bad"}), adapter.ErrBadRequest)
}

func TestApp_PrivilegedCommandsRequireCredentials(t *testing.T) {
	app, _, _ := newTestApp(t, false)

	for _, cmd := range []string{"login", "list", "block", "unblock", "delete", "delete-unverified"} {
		t.Run(cmd, func(t *testing.T) {
			err := app.Run(context.Background(), []string{cmd, "1"})
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestApp_LoginFailureStopsCommand(t *testing.T) {
	app, api, _ := newTestApp(t, true)

	api.EXPECT().Login(gomock.Any(), adminLogin).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"block", "2"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_List(t *testing.T) {
	app, api, out := newTestApp(t, true)

	lastLogin := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gomock.InOrder(
		expectLogin(api),
		api.EXPECT().List(gomock.Any()).Return([]models.AccountView{
			{ID: 1, Name: "Admin", Email: "admin@example.com", Status: models.StatusActive, LastLogin: &lastLogin, CreatedAt: lastLogin},
			{ID: 2, Name: "Ann", Email: "ann@example.com", Status: models.StatusUnverified, CreatedAt: lastLogin},
		}, nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "EMAIL")
	assert.Contains(t, string(lines[1]), "2026-03-01 12:00:00")
	assert.Contains(t, string(lines[2]), "unverified")
	assert.Contains(t, string(lines[2]), " - ")
}

func TestApp_Block(t *testing.T) {
	tests := []struct {
		name    string
		result  models.BlockResult
		wantOut string
	}{
		{name: "others", result: models.BlockResult{}, wantOut: "Blocked 2 account(s)."},
		{name: "self", result: models.BlockResult{SelfBlocked: true}, wantOut: "You blocked your own account. Logging out..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, api, out := newTestApp(t, true)
			expectLogin(api)
			api.EXPECT().Block(gomock.Any(), []int64{1, 2}).Return(tt.result, nil)

			require.NoError(t, app.Run(context.Background(), []string{"block", "1,2"}))
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestApp_Unblock(t *testing.T) {
	app, api, out := newTestApp(t, true)
	expectLogin(api)
	api.EXPECT().Unblock(gomock.Any(), []int64{3, 4, 5}).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"unblock", "3", "4,5"}))
	assert.Contains(t, out.String(), "Unblocked 3 account(s).")
}

func TestApp_Delete(t *testing.T) {
	app, api, out := newTestApp(t, true)
	expectLogin(api)
	api.EXPECT().Delete(gomock.Any(), []int64{7}).
		Return(models.DeleteResponse{Message: "Deleted 1 user(s).", DeletedIDs: []int64{7}}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", "7"}))
	assert.Contains(t, out.String(), "Deleted 1 user(s).")
}

func TestApp_DeleteUnverified(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		app, api, out := newTestApp(t, true)
		expectLogin(api)
		api.EXPECT().DeleteUnverified(gomock.Any(), []int64{4, 5}).Return([]int64{4, 5}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"delete-unverified", "4", "5"}))
		assert.Contains(t, out.String(), "Deleted unverified: 4, 5")
	})

	t.Run("nothing matched", func(t *testing.T) {
		app, api, out := newTestApp(t, true)
		expectLogin(api)
		api.EXPECT().DeleteUnverified(gomock.Any(), []int64{9}).Return([]int64{}, nil)

		require.NoError(t, app.Run(context.Background(), []string{"delete-unverified", "9"}))
		assert.Contains(t, out.String(), "No unverified accounts matched.")
	})
}

func TestApp_PingAndVersion(t *testing.T) {
	app, api, out := newTestApp(t, false)

	api.EXPECT().PingDatabase(gomock.Any()).Return(nil)
	api.EXPECT().Version(gomock.Any()).Return(models.AppBuildInfo{BuildVersion: "v1.0.0", BuildDate: "N/A", BuildCommit: "abc"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"ping"}))
	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "DB OK")
	assert.Contains(t, out.String(), "Server version: v1.0.0")

	dbDown := errors.New("db down")
	api.EXPECT().PingDatabase(gomock.Any()).Return(dbDown)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"ping"}), dbDown)
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int64
		wantErr error
	}{
		{name: "separate", args: []string{"1", "2"}, want: []int64{1, 2}},
		{name: "comma list", args: []string{"1,2, 3"}, want: []int64{1, 2, 3}},
		{name: "empty parts", args: []string{",4,,"}, want: []int64{4}},
		{name: "none", args: nil, wantErr: ErrUsage},
		{name: "junk", args: []string{"1", "x"}, wantErr: ErrInvalidID},
		{name: "non positive", args: []string{"0"}, wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDs(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf)

	assert.Contains(t, buf.String(), "delete-unverified <id>...")
	assert.Contains(t, buf.String(), usageRegister)
}
