package service

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/itsDrac/bidhub/internal/testutil"
)

func TestMain(m *testing.M) {
	os.Exit(testutil.Setup(m))
}

type testServices struct {
	env      *testutil.TestEnv
	bidding  *BiddingService
	seller   *SellerService
	cron     *CronService
	notifier *testutil.RecordingNotifier
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	env := testutil.GetTestEnv(t)
	n := &testutil.RecordingNotifier{}

	bidding, err := NewBiddingService(env.DB, n)
	if err != nil {
		t.Fatal(err)
	}
	seller, err := NewSellerService(env.DB, n)
	if err != nil {
		t.Fatal(err)
	}
	cron, err := NewCronService(env.DB, n)
	if err != nil {
		t.Fatal(err)
	}
	return &testServices{env: env, bidding: bidding, seller: seller, cron: cron, notifier: n}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// tickingClock returns start on the first call and one second later on each
// call after that.
func tickingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}
