package httphandlers

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/solace-fi/solace-client-sub001/internal/lib"
	"github.com/solace-fi/solace-client-sub001/internal/networks"
	"github.com/solace-fi/solace-client-sub001/internal/resources/gas"
	"github.com/solace-fi/solace-client-sub001/internal/resources/locks"
	"github.com/stretchr/testify/require"
)

const ownerHex = "0x60EbdC73d89a9f02D1cA0EbcD842650873c4dec2"

type positionServiceMock struct {
	position *locks.Position
}

func (m *positionServiceMock) GetPosition(ctx context.Context, locker string, owner common.Address) (*locks.Position, error) {
	if locker != locks.LockerXsLocker {
		return nil, locks.ErrUnknownLocker
	}
	return m.position, nil
}

func (m *positionServiceMock) Lockers() []string {
	return []string{locks.LockerXsLocker}
}

type snapshotProviderMock struct {
	snapshot *gas.Snapshot
}

func (m *snapshotProviderMock) Snapshot() *gas.Snapshot {
	return m.snapshot
}

type configMock struct{}

func (configMock) GetSanitized() interface{} {
	return map[string]string{"Environment": "test"}
}

func newTestRouter(snapshot *gas.Snapshot) *gin.Engine {
	owner := common.HexToAddress(ownerHex)
	pos := locks.NewPosition(owner, 1000, []locks.Lock{
		locks.NewLock(locks.LockFields{ID: big.NewInt(2), Amount: big.NewInt(500), End: big.NewInt(900)}, 1000, locks.ZeroRewardRate()),
		locks.NewLock(locks.LockFields{ID: big.NewInt(1), Amount: big.NewInt(1000), End: big.NewInt(4600)}, 1000, locks.ZeroRewardRate()),
	})
	ethereum, _ := networks.ByChainID(networks.ChainIDEthereum)

	return NewHTTPHandler(
		&positionServiceMock{position: pos},
		gas.NewService(ethereum, &snapshotProviderMock{snapshot: snapshot}),
		configMock{},
		lib.MustParseURL("http://localhost:8080"),
		lib.NewTestLogger(),
	)
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	w := doGet(t, newTestRouter(nil), "/healthcheck")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "healthy", res["status"])
	require.EqualValues(t, 1, res["chainId"])
}

func TestRequestIDPassthrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(w, req)

	require.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestGetConfig(t *testing.T) {
	w := doGet(t, newTestRouter(nil), "/config")
	require.Equal(t, http.StatusOK, w.Code)

	var res ConfigResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "Ethereum", res.Network)
	require.Equal(t, []string{locks.LockerXsLocker}, res.Lockers)
}

func TestGetPosition(t *testing.T) {
	w := doGet(t, newTestRouter(nil), "/locks/xslocker/"+ownerHex)
	require.Equal(t, http.StatusOK, w.Code)

	var res Position
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, "1500", res.Staked)
	require.Equal(t, "1000", res.Locked)
	require.Equal(t, "500", res.Unlocked)
	require.Equal(t, "0", res.APR)
	require.Len(t, res.Locks, 2)
	require.Equal(t, "1", res.Locks[0].ID)
	require.Equal(t, uint64(3600), res.Locks[0].TimeLeft)
	require.Equal(t, "http://localhost:8080/locks/xslocker/"+common.HexToAddress(ownerHex).Hex(), res.Self)
}

func TestGetPositionErrors(t *testing.T) {
	r := newTestRouter(nil)

	require.Equal(t, http.StatusBadRequest, doGet(t, r, "/locks/xslocker/0x123").Code)
	require.Equal(t, http.StatusNotFound, doGet(t, r, "/locks/unknown/"+ownerHex).Code)
}

func TestGetGasConfig(t *testing.T) {
	r := newTestRouter(&gas.Snapshot{GasPrice: 50, MaxFeePerGas: 80, MaxPriorityFeePerGas: 2, FetchedAt: time.Now()})

	tests := []struct {
		name   string
		query  string
		status int
		body   string
	}{
		{name: "dynamic fee wallet", query: "?wallet=metamask", status: 200, body: `{"maxFeePerGas":"80000000000","maxPriorityFeePerGas":"2000000000","type":2}`},
		{name: "legacy wallet", query: "?wallet=walletconnect", status: 200, body: `{"gasPrice":"50000000000"}`},
		{name: "explicit types", query: "?txTypes=0,2", status: 200, body: `{"maxFeePerGas":"80000000000","maxPriorityFeePerGas":"2000000000","type":2}`},
		{name: "unknown wallet", query: "?wallet=nope", status: 200, body: `{}`},
		{name: "no wallet", query: "", status: 200, body: `{}`},
		{name: "bad types", query: "?txTypes=x", status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, r, "/gas"+tt.query)
			require.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				require.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestGetGasSnapshot(t *testing.T) {
	require.Equal(t, http.StatusNotFound, doGet(t, newTestRouter(nil), "/gas/snapshot").Code)

	w := doGet(t, newTestRouter(&gas.Snapshot{GasPrice: 50, Source: "node", FetchedAt: time.Now()}), "/gas/snapshot")
	require.Equal(t, http.StatusOK, w.Code)

	var res Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 50.0, res.GasPrice)
	require.Equal(t, "node", res.Source)
}

func TestMetrics(t *testing.T) {
	w := doGet(t, newTestRouter(nil), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
}
