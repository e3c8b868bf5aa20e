package main_test

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/txrecords/pkg/query"
	"github.com/amirasaad/txrecords/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestRootRoute() {
	resp := s.MakeRequest(http.MethodGet, "/", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestNotFoundRoute() {
	resp := s.MakeRequest(http.MethodGet, "/doesnotexist", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MainTestSuite) TestTransactionLifecycle() {
	productID := fmt.Sprintf("P-%d", time.Now().UnixNano())

	resp := s.MakeRequest(http.MethodPost, "/v1/transactions",
		fmt.Sprintf(`{"productId":%q,"type":"DEPOSIT","amount":"100.25","clientId":"C1","balance":"10"}`, productID), "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	created := s.DecodeData(resp).(map[string]any)
	id := created["id"].(string)
	s.Equal("No description", created["description"])
	s.Equal("COMPLETED", created["status"])
	s.Equal(created["createdDate"], created["updatedDate"])

	resp = s.MakeRequest(http.MethodGet, "/v1/transactions/"+id, "", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal(productID, s.DecodeData(resp).(map[string]any)["productId"])

	resp = s.MakeRequest(http.MethodPut, "/v1/transactions/"+id,
		fmt.Sprintf(`{"productId":%q,"type":"WITHDRAWAL","amount":"5","clientId":"C1","commission":"0.5"}`, productID), "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	updated := s.DecodeData(resp).(map[string]any)
	s.Equal(id, updated["id"])
	s.Equal(created["createdDate"], updated["createdDate"])

	resp = s.MakeRequest(http.MethodGet, "/v1/transactions/product/"+productID, "", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(s.DecodeData(resp), 1)

	today := time.Now().UTC().Format(query.DateLayout)
	resp = s.MakeRequest(http.MethodGet, fmt.Sprintf(
		"/v1/transactions/commissions?productId=%s&startDate=%s&endDate=%s", productID, today, today), "", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(s.DecodeData(resp), 1)

	resp = s.MakeRequest(http.MethodDelete, "/v1/transactions/"+id, "", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	resp = s.MakeRequest(http.MethodDelete, "/v1/transactions/"+id, "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MainTestSuite) TestDailyAverages() {
	clientID := fmt.Sprintf("C-%d", time.Now().UnixNano())
	for _, balance := range []string{"10", "20", "30"} {
		resp := s.MakeRequest(http.MethodPost, "/v1/transactions",
			fmt.Sprintf(`{"productId":"P1","type":"DEPOSIT","amount":"1","clientId":%q,"balance":%q}`,
				clientID, balance), "")
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
		resp.Body.Close() //nolint: errcheck
	}

	today := time.Now().UTC().Format(query.DateLayout)
	resp := s.MakeRequest(http.MethodGet, fmt.Sprintf(
		"/v1/transactions/clients/%s/daily-averages?startDate=%s&endDate=%s", clientID, today, today), "", "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	rep := s.DecodeData(resp).(map[string]any)
	products := rep["products"].([]any)
	s.Require().Len(products, 1)
	days := products[0].(map[string]any)["dailyAverages"].([]any)
	s.Require().Len(days, 1)
	s.InDelta(20.0, days[0].(map[string]any)["average"], 1e-9)
}
