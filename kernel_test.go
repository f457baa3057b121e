package plug_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/enorith/container"
	"github.com/reachfh/plug"
	"github.com/reachfh/plug/content"
	"github.com/reachfh/plug/contracts"
	"github.com/reachfh/plug/static"
	"github.com/reachfh/plug/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKernel(t testing.TB, root string) *plug.Kernel {
	k := plug.NewKernel(func(request contracts.RequestContract) *container.Container {
		return container.New()
	}, false)

	m, err := static.New(static.Config{Prefix: "/public", Root: root})
	if err != nil {
		t.Fatal(err)
	}

	k.Use(m)
	k.Fallback(func(r contracts.RequestContract) contracts.ResponseContract {
		return content.TextResponse("ok", 200)
	})

	return k
}

func staticRoot(t testing.TB) string {
	dir := t.TempDir()

	if err := os.Mkdir(filepath.Join(dir, "fixtures"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fixtures", "static.txt"), []byte("HELLO"), 0o644); err != nil {
		t.Fatal(err)
	}

	return dir
}

func TestKernel_Handle(t *testing.T) {
	k := newTestKernel(t, staticRoot(t))

	resp := k.Handle(tests.NewRequest("GET", "/hello"))
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "ok", string(resp.Content()))
}

func TestKernel_HandleStatic(t *testing.T) {
	k := newTestKernel(t, staticRoot(t))

	resp := k.Handle(tests.NewRequest("GET", "/public/fixtures/static.txt"))
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "HELLO", string(resp.Content()))
}

func TestKernel_HandleInvalidStaticPath(t *testing.T) {
	k := newTestKernel(t, staticRoot(t))

	resp := k.Handle(tests.NewRequest("GET", "/public/fixtures/../fixtures/static/file.txt"))
	assert.Equal(t, 400, resp.StatusCode())
}

func TestKernel_MiddlewareOrder(t *testing.T) {
	k := newTestKernel(t, staticRoot(t))

	var order []string
	k.Use(plug.FuncMiddleware{HandleFunc: func(r contracts.RequestContract, next plug.PipeHandler) contracts.ResponseContract {
		order = append(order, "outer")
		resp := next(r)
		order = append(order, "outer done")
		return resp
	}})
	k.Use(plug.FuncMiddleware{HandleFunc: func(r contracts.RequestContract, next plug.PipeHandler) contracts.ResponseContract {
		order = append(order, "inner")
		return next(r)
	}})

	resp := k.Handle(tests.NewRequest("GET", "/hello"))
	require.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, []string{"outer", "inner", "outer done"}, order)
}

func TestKernel_RecoversPanic(t *testing.T) {
	k := newTestKernel(t, staticRoot(t))
	k.Fallback(func(r contracts.RequestContract) contracts.ResponseContract {
		panic("boom")
	})

	resp := k.Handle(tests.NewRequest("GET", "/hello"))
	assert.Equal(t, 500, resp.StatusCode())
}

func BenchmarkKernel_Handle(b *testing.B) {
	k := newTestKernel(b, staticRoot(b))
	r := tests.NewRequest("GET", "/public/fixtures/static.txt")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		k.Handle(r)
	}
}
