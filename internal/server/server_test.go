package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freedomd-dev/freedomd/internal/model"
	"github.com/freedomd-dev/freedomd/internal/store"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testServer(t *testing.T, p model.Profile) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, store.Save(dir, p))

	log := logrus.New()
	log.SetOutput(io.Discard)

	ts := httptest.NewServer(New(dir, log).Router())
	t.Cleanup(ts.Close)
	return ts
}

func testProfile() model.Profile {
	return model.Profile{
		Accounts: []model.Account{{
			ID: "acct-1", Name: "Checking", Kind: model.AccountChecking,
			Balance: decimal.NewNullDecimal(dec("3000")),
		}},
		IncomeSources: []model.IncomeSource{{
			ID: "inc-1", Amount: dec("4000"), Frequency: model.Monthly, AccountID: "acct-1",
		}},
		Obligations: []model.Obligation{{
			ID: "obl-1", Amount: dec("1000"), AccountID: "acct-1",
		}},
	}
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	ts := testServer(t, testProfile())

	var body map[string]string
	status := getJSON(t, ts.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestCashFlowEndpoint(t *testing.T) {
	ts := testServer(t, testProfile())

	var body struct {
		TotalMonthlyIncome string `json:"totalMonthlyIncome"`
		Health             string `json:"health"`
	}
	status := getJSON(t, ts.URL+"/api/v1/cashflow", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "4000", body.TotalMonthlyIncome)
	// 3000 liquid against 1000/mo outflow is exactly 3 months.
	assert.Equal(t, "building", body.Health)
}

func TestAccountCashFlowEndpoint(t *testing.T) {
	ts := testServer(t, testProfile())

	var body struct {
		AccountID    string `json:"accountId"`
		DaysOfRunway int64  `json:"daysOfRunway"`
	}
	status := getJSON(t, ts.URL+"/api/v1/accounts/acct-1/cashflow", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "acct-1", body.AccountID)
	assert.Equal(t, int64(90), body.DaysOfRunway)
}

func TestAccountCashFlowEndpoint_Unknown(t *testing.T) {
	ts := testServer(t, testProfile())
	status := getJSON(t, ts.URL+"/api/v1/accounts/acct-404/cashflow", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFreedomEndpoint(t *testing.T) {
	p := testProfile()
	p.Assets = []model.Asset{{
		ID: "asset-1", Category: model.AssetCrypto, Value: dec("100000"),
		Crypto: &model.CryptoDetail{
			APY:    decimal.NewNullDecimal(dec("0.05")),
			Staked: true,
		},
	}}
	ts := testServer(t, p)

	var body struct {
		Days   int64  `json:"days"`
		Label  string `json:"label"`
		Kinged bool   `json:"kinged"`
	}
	status := getJSON(t, ts.URL+"/api/v1/freedom", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, body.Kinged)
	assert.Greater(t, body.Days, int64(0))
	assert.NotEmpty(t, body.Label)
}

func TestPaycheckEndpoint(t *testing.T) {
	ts := testServer(t, testProfile())

	var body struct {
		Mode   string `json:"mode"`
		NetPay string `json:"netPay"`
	}
	status := getJSON(t, ts.URL+"/api/v1/paycheck/inc-1", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "legacy", body.Mode)
	assert.Equal(t, "4000", body.NetPay)
}

func TestMissingProfileIs500(t *testing.T) {
	dir := t.TempDir() // no profile.json
	log := logrus.New()
	log.SetOutput(io.Discard)
	ts := httptest.NewServer(New(dir, log).Router())
	defer ts.Close()

	status := getJSON(t, ts.URL+"/api/v1/cashflow", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
}
