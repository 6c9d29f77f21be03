package app

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/edusphere/admin-client/mockapi"
)

func TestSetupConsoleAgainstMock(t *testing.T) {
	server := mockapi.NewServer("setup-token")
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		_ = server.Listen(ln)
	}()
	t.Cleanup(func() { _ = server.Shutdown() })

	t.Setenv("GO_ENV", "test")
	t.Setenv("API_BASE_URL", "http://"+ln.Addr().String()+"/api/v1")
	t.Setenv("ADMIN_ACCESS_TOKEN", "setup-token")
	t.Setenv("ADMIN_NAME", "Test Admin")
	t.Setenv("REFDATA_CACHE_ENABLED", "false")

	console, err := SetupConsole()
	if err != nil {
		t.Fatalf("SetupConsole: %v", err)
	}
	defer console.Close()

	if console.Refresher != nil {
		t.Fatal("refresher started without a cache")
	}
	if console.Session.Profile().Name != "Test Admin" {
		t.Fatalf("profile name = %q", console.Session.Profile().Name)
	}

	branches, err := console.RefData.Branches(context.Background())
	if err != nil {
		t.Fatalf("branches through the console: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("got %d branches", len(branches))
	}

	teachers := console.TeacherSelect(nil)
	defer teachers.Close()
	teachers.SetParent(1)
	deadline := time.Now().Add(2 * time.Second)
	for teachers.Snapshot().Loading && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	snap := teachers.Snapshot()
	if snap.Err != nil {
		t.Fatalf("teacher select: %v", snap.Err)
	}
	if len(snap.Options) != 2 {
		t.Fatalf("branch 1 select has %d teachers", len(snap.Options))
	}
}

func TestSetupConsoleRequiresToken(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("ADMIN_ACCESS_TOKEN", "")

	if _, err := SetupConsole(); err == nil {
		t.Fatal("setup succeeded without a token")
	}
}
