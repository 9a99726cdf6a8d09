package webapi_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/briskfarm/backend/webapi/testutils"
)

type DonationFlowTestSuite struct {
	testutils.E2ETestSuite
}

func TestDonationFlowTestSuite(t *testing.T) {
	suite.Run(t, new(DonationFlowTestSuite))
}

func (s *DonationFlowTestSuite) decode(resp *http.Response) map[string]any {
	var out map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *DonationFlowTestSuite) data(resp *http.Response) map[string]any {
	return s.decode(resp)["data"].(map[string]any)
}

func (s *DonationFlowTestSuite) createCampaign(token, name, slug string) string {
	body := fmt.Sprintf(`{"name":%q,"slug":%q,"currency":"UGX","target_amount":5000000}`, name, slug)
	resp := s.MakeRequest("POST", "/api/v1/campaigns", body, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	return s.data(resp)["id"].(string)
}

func (s *DonationFlowTestSuite) TestDonationConfirmedEndToEnd() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")
	campaignID := s.createCampaign(token, "Community Farm", "community-farm")

	body := fmt.Sprintf(
		`{"amount":100000,"currency":"UGX","donor_name":"Jane Donor","donor_email":"jane@example.com","campaign_id":%q,"payment_method":"mtn_momo"}`,
		campaignID,
	)
	resp := s.MakeRequest("POST", "/api/v1/donations", body, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	data := s.data(resp)
	sessionID := data["provider_session_id"].(string)
	donation := data["donation"].(map[string]any)
	donationID := donation["id"].(string)

	s.Equal("pending", donation["status"])
	s.Equal(fmt.Sprintf("dummy_mtn_momo_session_%s", donationID), sessionID)
	s.Contains(data["payment_url"].(string), "/mtn-momo/checkout/")

	event := fmt.Sprintf(`{"session_id":%q,"status":"success"}`, sessionID)
	whResp := s.PostWebhook([]byte(event), s.SignBody([]byte(event)))
	s.Require().Equal(http.StatusOK, whResp.StatusCode)

	whData := s.data(whResp)
	s.Equal(true, whData["ok"])
	s.Equal(donationID, whData["donation_id"])
	s.Equal("confirmed", whData["status"])

	// Admin sees the confirmed donation with provider audit fields.
	getResp := s.MakeRequest("GET", "/api/v1/donations/"+donationID, "", token)
	s.Require().Equal(http.StatusOK, getResp.StatusCode)
	fetched := s.data(getResp)
	s.Equal("confirmed", fetched["status"])
	s.Equal("success", fetched["provider_status"])
	s.Equal("mtn_momo", fetched["payment_method"])

	// The campaign accumulator moved with the confirmation.
	campResp := s.MakeRequest("GET", "/api/v1/campaigns/community-farm", "", "")
	s.Require().Equal(http.StatusOK, campResp.StatusCode)
	s.Equal(float64(100000), s.data(campResp)["raised_amount"])
}

func (s *DonationFlowTestSuite) TestWebhookBadSignatureLeavesDonationPending() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")

	resp := s.MakeRequest("POST", "/api/v1/donations", `{"amount":5000,"currency":"UGX"}`, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	data := s.data(resp)
	sessionID := data["provider_session_id"].(string)
	donationID := data["donation"].(map[string]any)["id"].(string)

	event := fmt.Sprintf(`{"session_id":%q,"status":"success"}`, sessionID)
	whResp := s.PostWebhook([]byte(event), "deadbeef")
	s.Require().Equal(http.StatusBadRequest, whResp.StatusCode)

	getResp := s.MakeRequest("GET", "/api/v1/donations/"+donationID, "", token)
	s.Require().Equal(http.StatusOK, getResp.StatusCode)
	s.Equal("pending", s.data(getResp)["status"])
}

func (s *DonationFlowTestSuite) TestWebhookMissingSignatureRejected() {
	resp := s.MakeRequest("POST", "/api/v1/donations", `{"amount":1000}`, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	sessionID := s.data(resp)["provider_session_id"].(string)

	event := fmt.Sprintf(`{"session_id":%q,"status":"success"}`, sessionID)
	whResp := s.PostWebhook([]byte(event), "")
	s.Equal(http.StatusBadRequest, whResp.StatusCode)
}

func (s *DonationFlowTestSuite) TestWebhookUnknownSessionRejected() {
	event := []byte(`{"session_id":"dummy_card_session_missing","status":"success"}`)
	whResp := s.PostWebhook(event, s.SignBody(event))
	s.Equal(http.StatusBadRequest, whResp.StatusCode)
}

func (s *DonationFlowTestSuite) TestDonationToClosedCampaignRejected() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")
	campaignID := s.createCampaign(token, "Closed Drive", "closed-drive")

	upd := s.MakeRequest("PUT", "/api/v1/campaigns/"+campaignID, `{"status":"closed"}`, token)
	s.Require().Equal(http.StatusOK, upd.StatusCode)

	body := fmt.Sprintf(`{"amount":1000,"campaign_id":%q}`, campaignID)
	resp := s.MakeRequest("POST", "/api/v1/donations", body, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *DonationFlowTestSuite) TestInvalidAmountRejected() {
	resp := s.MakeRequest("POST", "/api/v1/donations", `{"amount":-5}`, "")
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	// Nothing was persisted for the rejected intent.
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")
	listResp := s.MakeRequest("GET", "/api/v1/donations", "", token)
	s.Require().Equal(http.StatusOK, listResp.StatusCode)
	s.Empty(s.decode(listResp)["data"])
}

func (s *DonationFlowTestSuite) TestAdminListFilters() {
	admin := s.CreateAdmin("admin@example.com", "adminpass1")
	token := s.Login(admin.Email, "adminpass1")

	resp := s.MakeRequest("POST", "/api/v1/donations", `{"amount":2000}`, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	confirmedSession := s.data(resp)["provider_session_id"].(string)

	resp = s.MakeRequest("POST", "/api/v1/donations", `{"amount":7000}`, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	event := fmt.Sprintf(`{"session_id":%q,"status":"paid"}`, confirmedSession)
	whResp := s.PostWebhook([]byte(event), s.SignBody([]byte(event)))
	s.Require().Equal(http.StatusOK, whResp.StatusCode)

	listResp := s.MakeRequest("GET", "/api/v1/donations?status=confirmed", "", token)
	s.Require().Equal(http.StatusOK, listResp.StatusCode)
	items := s.decode(listResp)["data"].([]any)
	s.Require().Len(items, 1)
	s.Equal(float64(2000), items[0].(map[string]any)["amount"])

	listResp = s.MakeRequest("GET", "/api/v1/donations?min_amount=5000", "", token)
	s.Require().Equal(http.StatusOK, listResp.StatusCode)
	items = s.decode(listResp)["data"].([]any)
	s.Require().Len(items, 1)
	s.Equal(float64(7000), items[0].(map[string]any)["amount"])

	// A "+00:00" offset arrives as " 00:00" after query decoding; the
	// filter still parses it.
	listResp = s.MakeRequest("GET", "/api/v1/donations?date_from=2020-01-01T00:00:00%2000:00", "", token)
	s.Require().Equal(http.StatusOK, listResp.StatusCode)
	s.Len(s.decode(listResp)["data"].([]any), 2)
}
