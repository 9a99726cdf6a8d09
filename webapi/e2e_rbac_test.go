package webapi_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/briskfarm/backend/webapi/testutils"
)

type RBACTestSuite struct {
	testutils.E2ETestSuite
}

func TestRBACTestSuite(t *testing.T) {
	suite.Run(t, new(RBACTestSuite))
}

func (s *RBACTestSuite) TestStaffCannotReachAdminEndpoints() {
	staff := s.CreateStaff("staff@example.com", "staffpass1")
	token := s.Login(staff.Email, "staffpass1")

	adminOnly := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/donations"},
		{"GET", "/api/v1/donations/0b7e7dc1-714b-4f0f-8b09-26c0a0a4bd42"},
		{"GET", "/api/v1/subscribers"},
		{"GET", "/api/v1/stats"},
		{"GET", "/api/v1/users"},
		{"POST", "/api/v1/campaigns"},
	}

	for _, route := range adminOnly {
		resp := s.MakeRequest(route.method, route.path, "", token)
		// The role check runs before any lookup, so a staff caller never
		// learns whether the probed resource exists.
		s.Equalf(http.StatusForbidden, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func (s *RBACTestSuite) TestInvalidTokenRejected() {
	resp := s.MakeRequest("GET", "/api/v1/donations", "", "not-a-token")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *RBACTestSuite) TestSuperuserWithoutAdminRoleIsAdmin() {
	root := s.CreateUser("root@example.com", "rootpass12", "STAFF", true)
	token := s.Login(root.Email, "rootpass12")

	resp := s.MakeRequest("GET", "/api/v1/stats", "", token)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *RBACTestSuite) TestLoginFailures() {
	s.CreateAdmin("admin@example.com", "adminpass1")

	resp := s.MakeRequest("POST", "/api/v1/auth/login",
		`{"email":"admin@example.com","password":"wrong-password"}`, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.MakeRequest("POST", "/api/v1/auth/login",
		`{"email":"ghost@example.com","password":"whatever12"}`, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *RBACTestSuite) TestAuthMeReturnsCurrentUser() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")

	resp := s.MakeRequest("GET", "/api/v1/auth/me", "", token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var out map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	data := out["data"].(map[string]any)
	s.Equal("admin@example.com", data["email"])
	s.Equal("ADMIN", data["role"])
}

func (s *RBACTestSuite) TestAdminCannotDemoteSelf() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")

	resp := s.MakeRequest("PATCH", "/api/v1/users/"+admin.ID.String()+"/role",
		`{"role":"STAFF"}`, token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *RBACTestSuite) TestRoleUpdateRejectsUnknownRole() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	staff := s.CreateStaff("staff@example.com", "staffpass1")
	token := s.Login(admin.Email, "adminpass1")

	resp := s.MakeRequest("PATCH", "/api/v1/users/"+staff.ID.String()+"/role",
		`{"role":"OVERLORD"}`, token)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	resp = s.MakeRequest("PATCH", "/api/v1/users/"+staff.ID.String()+"/role",
		`{"role":"ADMIN"}`, token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var out map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Equal("ADMIN", out["data"].(map[string]any)["role"])
}
