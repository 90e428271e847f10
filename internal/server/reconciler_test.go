package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/utility-bills/internal/async"
	"github.com/joseph-ayodele/utility-bills/internal/ingest"
	"github.com/joseph-ayodele/utility-bills/internal/reconcile"
	"github.com/joseph-ayodele/utility-bills/internal/repository"
)

type recordingQueue struct{ jobs []async.Job }

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

func dial(t *testing.T, svc ReconcilerServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s, _ := NewGRPCServer(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestReconcileOverGRPC(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conn := dial(t, NewReconcilerService(reconcile.NewEngine(logger), nil, nil, logger))
	client := NewReconcilerClient(conn)
	ctx := context.Background()

	tests := []struct {
		name       string
		total      string
		wantPassed bool
	}{
		{"matched", "50.00", true},
		{"mismatched", "60.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mustStruct(t, map[string]any{
				"provider": "City of Lacey",
				"statement": map[string]any{
					"previous_balance": "100.00",
					"payments_applied": "-100.00",
					"current_billing":  "50.00",
					"total_amount_due": tt.total,
				},
			})
			resp, err := client.Reconcile(ctx, req)
			if err != nil {
				t.Fatalf("Reconcile: %v", err)
			}
			f := resp.GetFields()
			if got := f["passed"].GetBoolValue(); got != tt.wantPassed {
				t.Fatalf("passed = %v, want %v", got, tt.wantPassed)
			}
			if f["provider"].GetStringValue() != "lacey" {
				t.Fatalf("provider = %q", f["provider"].GetStringValue())
			}
			stmt := f["bill"].GetStructValue().GetFields()["statement"].GetStructValue()
			if _, ok := stmt.GetFields()[reconcile.KeyTotal]; !ok {
				t.Fatalf("merged bill lacks %s", reconcile.KeyTotal)
			}
		})
	}

	_, err := client.Reconcile(ctx, mustStruct(t, map[string]any{"provider": "nowhere"}))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("unknown provider code = %v", status.Code(err))
	}

	providers, err := client.ListProviders(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(providers.GetFields()["providers"].GetListValue().GetValues()); n == 0 {
		t.Fatal("no providers listed")
	}

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil || hc.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("health = %v, %v", hc.GetStatus(), err)
	}
}

func TestSubmitQueuesNewFiles(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "bill.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := repository.NewMemoryStore()
	queue := &recordingQueue{}
	svc := NewReconcilerService(reconcile.NewEngine(logger), ingest.NewFSIngestor(store, logger), queue, logger)
	client := NewReconcilerClient(dial(t, svc))
	ctx := context.Background()

	for i, want := range []bool{true, false} {
		resp, err := client.Submit(ctx, mustStruct(t, map[string]any{"path": path}))
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if got := resp.GetFields()["queued"].GetBoolValue(); got != want {
			t.Fatalf("submit %d queued = %v, want %v", i, got, want)
		}
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("jobs = %+v", queue.jobs)
	}

	_, err := NewReconcilerClient(dial(t, NewReconcilerService(nil, nil, nil, logger))).
		Submit(ctx, mustStruct(t, map[string]any{"path": path}))
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("submit without store code = %v", status.Code(err))
	}
}
