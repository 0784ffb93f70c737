package introspect

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/guileen/fieldspy/display"
	ierrors "github.com/guileen/fieldspy/errors"
	"github.com/guileen/fieldspy/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAccessor struct {
	mock.Mock
}

func (m *mockAccessor) Read(field Field, target reflect.Value) (any, error) {
	args := m.Called(field.Name)
	return args.Get(0), args.Error(1)
}

func (m *mockAccessor) Write(field Field, target reflect.Value, value any) error {
	args := m.Called(field.Name, value)
	return args.Error(0)
}

func recordNames(records []display.Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name()
	}
	return names
}

func TestExtractCompleteness(t *testing.T) {
	records, err := Extract(newSpy())
	require.NoError(t, err)

	fields, err := Fields(typeOf[spy]())
	require.NoError(t, err)
	assert.Equal(t, fieldNames(fields), recordNames(records))
}

func TestExtractOrdering(t *testing.T) {
	l := newLeaf()

	first, err := Extract(&l)
	require.NoError(t, err)
	second, err := Extract(&l)
	require.NoError(t, err)

	assert.Equal(t, []string{"LeafA", "LeafB", "MidName", "Flag", "OtherX", "RootID", "rootNote"}, recordNames(first))
	assert.Equal(t, first, second)
}

func TestExtractRecords(t *testing.T) {
	records, err := Extract(newSpy())
	require.NoError(t, err)

	byName := make(map[string]display.Record)
	for _, r := range records {
		byName[r.Name()] = r
	}

	b := byName["B"]
	assert.Equal(t, "[][]", b.DataType())
	assert.Equal(t, []string{"bool"}, b.ParamTypes())
	assert.True(t, b.IsArray())
	assert.Equal(t, [][]bool{{false, false}, {true, true}}, b.Value())

	val := byName["Val"]
	assert.Equal(t, "string", val.DataType())
	assert.Empty(t, val.ParamTypes())
	assert.Equal(t, "Abhishek", val.Value())

	items := byName["Items"]
	assert.Equal(t, "github.com/guileen/fieldspy/introspect.list", items.DataType())
	assert.Equal(t, []string{"int"}, items.ParamTypes())
	assert.False(t, items.IsArray())

	ids := byName["IDs"]
	assert.Equal(t, "[]", ids.DataType())
	assert.Equal(t, []string{"github.com/google/uuid.UUID"}, ids.ParamTypes())

	assert.Equal(t, "hidden", byName["secret"].Value())
	assert.Nil(t, byName["Err"].RawValue())
	assert.Equal(t, display.Empty{}, byName["Err"].Value())
}

func TestExtractByValue(t *testing.T) {
	l := newLeaf()

	byValue, err := Extract(l)
	require.NoError(t, err)
	byPointer, err := Extract(&l)
	require.NoError(t, err)

	assert.Equal(t, byPointer, byValue)
}

func TestExtractInvalid(t *testing.T) {
	var nilLeaf *leaf
	n := 3

	for name, obj := range map[string]any{
		"nil":         nil,
		"nil pointer": nilLeaf,
		"int":         3,
		"int pointer": &n,
	} {
		t.Run(name, func(t *testing.T) {
			records, err := Extract(obj)
			assert.Nil(t, records)
			assert.True(t, ierrors.IsInvalidArgumentError(err), "%v", err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	src := newSpy()
	src.Val = nil

	records, err := Extract(src)
	require.NoError(t, err)

	dst := &spy{Val: "stale"}
	got, err := Reconstitute(dst, records)
	require.NoError(t, err)
	assert.Same(t, dst, got)
	assert.Equal(t, src, dst)
}

func TestRoundTripEmbedded(t *testing.T) {
	src := newLeaf()
	records, err := Extract(src)
	require.NoError(t, err)

	var dst leaf
	_, err = Reconstitute(&dst, records)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
	assert.Equal(t, "note", dst.rootNote)
}

func TestReconstituteMissingField(t *testing.T) {
	var dst leaf
	records := []display.Record{
		display.NewRecord("LeafB", 5, "int"),
		display.NewRecord("Missing", 1, "int"),
		display.NewRecord("LeafA", "never", "string"),
	}

	_, err := Reconstitute(&dst, records)
	require.Error(t, err)
	assert.True(t, ierrors.IsFieldNotFoundError(err), "%v", err)
	assert.Contains(t, err.Error(), `"Missing"`)

	// Writes before the failure stay applied; later ones never happen.
	assert.Equal(t, 5, dst.LeafB)
	assert.Equal(t, "", dst.LeafA)
}

func TestReconstituteTypeMismatch(t *testing.T) {
	var dst leaf
	_, err := Reconstitute(&dst, []display.Record{display.NewRecord("LeafB", "five", "string")})
	assert.True(t, ierrors.IsTypeMismatchError(err), "%v", err)
}

func TestReconstituteInvalidTarget(t *testing.T) {
	records := []display.Record{display.NewRecord("LeafA", "x", "string")}
	engine := NewEngine(DefaultConfig())

	_, err := engine.Reconstitute(newLeaf(), records)
	assert.True(t, ierrors.IsAccessError(err), "%v", err)

	_, err = engine.Reconstitute(nil, records)
	assert.True(t, ierrors.IsInvalidArgumentError(err), "%v", err)

	var nilLeaf *leaf
	_, err = engine.Reconstitute(nilLeaf, records)
	assert.True(t, ierrors.IsInvalidArgumentError(err), "%v", err)

	n := 1
	_, err = engine.Reconstitute(&n, records)
	assert.True(t, ierrors.IsInvalidArgumentError(err), "%v", err)
}

func TestReconstituteReturnsTarget(t *testing.T) {
	var dst leaf
	engine := NewEngine(DefaultConfig())

	got, err := engine.Reconstitute(&dst, nil)
	require.NoError(t, err)
	assert.Same(t, &dst, got.(*leaf))
}

func TestEngineWithoutPlanCache(t *testing.T) {
	cached := NewEngine(DefaultConfig())
	uncached := NewEngine(Config{CachePlans: false})

	a, err := cached.Extract(newLeaf())
	require.NoError(t, err)
	b, err := uncached.Extract(newLeaf())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, ok := uncached.plans.plans.Load(typeOf[leaf]())
	assert.False(t, ok)
	_, ok = cached.plans.plans.Load(typeOf[leaf]())
	assert.True(t, ok)
}

func TestExtractFunnelsAccessorErrors(t *testing.T) {
	acc := new(mockAccessor)
	denied := ierrors.Wrap(errors.New("platform refused"), ierrors.ErrCodeAccess, "read")
	acc.On("Read", "LeafA").Return("a", nil)
	acc.On("Read", "LeafB").Return(nil, denied)

	records, err := NewEngine(Config{Accessor: acc}).Extract(newLeaf())
	assert.Nil(t, records)
	assert.Same(t, denied, err)
	acc.AssertExpectations(t)
	acc.AssertNotCalled(t, "Read", "MidName")
}

func TestReconstituteStopsAtFirstWriteError(t *testing.T) {
	acc := new(mockAccessor)
	acc.On("Write", "LeafA", "x").Return(nil)
	acc.On("Write", "LeafB", 2).Return(ierrors.New(ierrors.ErrCodeAccess, "write", "denied"))

	var dst leaf
	_, err := NewEngine(Config{Accessor: acc}).Reconstitute(&dst, []display.Record{
		display.NewRecord("LeafA", "x", "string"),
		display.NewRecord("LeafB", 2, "int"),
		display.NewRecord("Flag", true, "bool"),
	})
	assert.True(t, ierrors.IsAccessError(err))
	acc.AssertExpectations(t)
	acc.AssertNotCalled(t, "Write", "Flag", true)
}

func TestEngineLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := NewEngine(Config{CachePlans: true, Logger: log})

	_, err := engine.Extract(newLeaf())
	require.NoError(t, err)
	var dst leaf
	_, err = engine.Reconstitute(&dst, []display.Record{display.NewRecord("Nope", 1, "int")})
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"extracted fields"`)
	assert.Contains(t, lines[0], `"component":"introspect"`)
	assert.Contains(t, lines[0], `"count":7`)
	assert.Contains(t, lines[1], `"level":"WARN"`)
	assert.Contains(t, lines[1], `"error_code":"field_not_found"`)
	assert.Contains(t, lines[1], `"field":"Nope"`)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FIELDSPY_CACHE_PLANS", "false")
	assert.False(t, LoadConfig().CachePlans)

	t.Setenv("FIELDSPY_CACHE_PLANS", "bogus")
	assert.True(t, LoadConfig().CachePlans)
}

func TestRoundTripBlankFields(t *testing.T) {
	type padded struct {
		A int
		_ [4]byte
		_ int
		B string
	}
	src := padded{A: 1, B: "x"}

	records, err := Extract(&src)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "_", "_", "B"}, recordNames(records))

	var dst padded
	_, err = Reconstitute(&dst, records)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestPackageFunctionsFollowSetLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer logger.SetLogger(prev)

	_, err := Extract(newLeaf())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"extracted fields"`)
	assert.Contains(t, buf.String(), `"component":"introspect"`)
}

func TestEngineTracesPlanBuilds(t *testing.T) {
	var buf bytes.Buffer
	factory := logger.NewLoggerFactory(logger.Config{Level: logger.LevelTrace, Format: "json", Writer: &buf})
	engine := NewEngine(Config{CachePlans: true, Logger: factory.CreateLogger()})

	for i := 0; i < 3; i++ {
		_, err := engine.Extract(newLeaf())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, strings.Count(buf.String(), `"msg":"built field plan"`))
	assert.Contains(t, buf.String(), `"level":"TRACE"`)
}

func TestConcurrentExtract(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	leafNames := []string{"LeafA", "LeafB", "MidName", "Flag", "OtherX", "RootID", "rootNote"}
	spyFields, err := Fields(typeOf[spy]())
	require.NoError(t, err)
	spyNames := fieldNames(spyFields)

	const workers = 16
	got := make([][]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var records []display.Record
			if i%2 == 0 {
				records, errs[i] = engine.Extract(newLeaf())
			} else {
				records, errs[i] = engine.Extract(newSpy())
			}
			got[i] = recordNames(records)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		if i%2 == 0 {
			assert.Equal(t, leafNames, got[i])
		} else {
			assert.Equal(t, spyNames, got[i])
		}
	}
}
