package simulation

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ilptopo/datarecording"
	"github.com/sarchlab/ilptopo/param"
	"github.com/sarchlab/ilptopo/topology"
	"go.uber.org/mock/gomock"
)

func buildTopology(threads int) *topology.Topology {
	binary := filepath.Join(GinkgoT().TempDir(), "bin")
	Expect(os.WriteFile(binary, []byte("x"), 0o755)).To(Succeed())

	raw := param.DefaultRaw(binary)
	raw.CPUType = "o3"
	raw.SMTThreads = threads

	t, err := topology.MakeBuilder().Build(raw)
	Expect(err).NotTo(HaveOccurred())

	return t
}

func countRows(filename, table string) int {
	reader, err := datarecording.NewReader(filename)
	Expect(err).NotTo(HaveOccurred())
	defer reader.Close()

	reader.MapTable(table, RowTypes()[table])

	_, total, err := reader.Query(context.Background(), table,
		datarecording.QueryParams{})
	Expect(err).NotTo(HaveOccurred())

	return total
}

var _ = Describe("Simulation", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		topo     *topology.Topology
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		engine.EXPECT().Name().Return("Mock").AnyTimes()

		topo = buildTopology(2)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should hand the topology to the engine", func() {
		engine.EXPECT().
			Run(gomock.Any(), topo).
			Return(Result{Tick: 42, Cause: "exiting"}, nil)

		s, err := MakeBuilder().WithEngine(engine).Build()
		Expect(err).NotTo(HaveOccurred())

		result, err := s.Run(context.Background(), topo)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.String()).To(Equal("Exited @ 42 because exiting"))
		Expect(s.GetDataRecorder()).To(BeNil())
		Expect(s.GetMonitor()).To(BeNil())
		Expect(s.Terminate()).To(Succeed())
	})

	It("should pass engine errors through", func() {
		engineErr := &EngineError{Engine: "Mock", Err: errors.New("crashed")}
		engine.EXPECT().Run(gomock.Any(), topo).Return(Result{}, engineErr)

		s, err := MakeBuilder().WithEngine(engine).Build()
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Run(context.Background(), topo)

		var e *EngineError
		Expect(errors.As(err, &e)).To(BeTrue())
		Expect(err.Error()).To(Equal("engine Mock failed: crashed"))
	})

	It("should default to a dry run", func() {
		s, err := MakeBuilder().Build()

		Expect(err).NotTo(HaveOccurred())
		Expect(s.GetEngine()).To(BeAssignableToTypeOf(&DryRunEngine{}))
		Expect(s.ID()).NotTo(BeEmpty())
	})

	It("should record the topology", func() {
		engine.EXPECT().Run(gomock.Any(), topo).Return(Result{Cause: "done"}, nil)

		path := filepath.Join(GinkgoT().TempDir(), "record")
		s, err := MakeBuilder().WithEngine(engine).WithRecording(path).Build()
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Run(context.Background(), topo)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Terminate()).To(Succeed())

		filename := path + ".sqlite3"
		numPorts := 0
		for _, c := range topo.Components() {
			numPorts += len(c.Ports())
		}

		Expect(countRows(filename, ComponentTable)).To(Equal(8))
		Expect(countRows(filename, PortTable)).To(Equal(numPorts))
		Expect(countRows(filename, WireTable)).To(Equal(8))
		Expect(countRows(filename, CacheTable)).To(Equal(3))
		Expect(countRows(filename, ProcessTable)).To(Equal(2))
	})

	It("should fail if the recording file exists", func() {
		path := filepath.Join(GinkgoT().TempDir(), "record")
		Expect(os.WriteFile(path+".sqlite3", nil, 0o644)).To(Succeed())

		_, err := MakeBuilder().WithRecording(path).Build()

		Expect(err).To(MatchError(ContainSubstring("already exists")))
	})

	It("should serve the topology while running", func() {
		var s *Simulation

		engine.EXPECT().
			Run(gomock.Any(), topo).
			DoAndReturn(func(context.Context, *topology.Topology) (Result, error) {
				Expect(s.GetMonitor().URL()).To(HavePrefix("http://localhost:"))
				return Result{Cause: "done"}, nil
			})

		var err error
		s, err = MakeBuilder().WithEngine(engine).WithMonitoring().Build()
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Run(context.Background(), topo)

		Expect(err).NotTo(HaveOccurred())
		Expect(s.Terminate()).To(Succeed())
	})

	It("should not leave a recording behind if the monitor fails", func() {
		taken, err := net.Listen("tcp", ":0")
		Expect(err).NotTo(HaveOccurred())
		defer taken.Close()

		port := taken.Addr().(*net.TCPAddr).Port
		path := filepath.Join(GinkgoT().TempDir(), "record")

		_, err = MakeBuilder().
			WithMonitoring().
			WithMonitorPort(port).
			WithRecording(path).
			Build()

		Expect(err).To(HaveOccurred())
		Expect(path + ".sqlite3").NotTo(BeAnExistingFile())
	})

	It("should not allow monitor options without monitoring", func() {
		Expect(func() { MakeBuilder().WithMonitorPort(8080).Build() }).To(Panic())
		Expect(func() { MakeBuilder().WithBrowser().Build() }).To(Panic())
	})
})

var _ = Describe("DryRunEngine", func() {
	It("should print the summary", func() {
		topo := buildTopology(1)
		var sb strings.Builder

		result, err := NewDryRunEngine(&sb).Run(context.Background(), topo)

		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(Result{Tick: 0, Cause: DryRunCause}))
		Expect(sb.String()).To(ContainSubstring("DerivO3CPU"))
	})

	It("should stop on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewDryRunEngine(&strings.Builder{}).Run(ctx, buildTopology(1))

		Expect(err).To(BeAssignableToTypeOf(&EngineError{}))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})

var _ = Describe("ExecEngine", func() {
	var topo *topology.Topology

	script := func(body string) string {
		path := filepath.Join(GinkgoT().TempDir(), "engine.sh")
		Expect(os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755)).
			To(Succeed())

		return path
	}

	BeforeEach(func() {
		topo = buildTopology(1)
	})

	It("should parse the last exit line", func() {
		path := script(`cat > /dev/null
echo "Exited @ 10 because warmup"
echo "some other output"
echo "Exited @ 12345 because exiting with last active thread context"
`)
		var out strings.Builder

		result, err := NewExecEngine(path, nil, &out, nil).
			Run(context.Background(), topo)

		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(Result{
			Tick:  12345,
			Cause: "exiting with last active thread context",
		}))
		Expect(out.String()).To(ContainSubstring("some other output"))
	})

	It("should write the topology to the engine", func() {
		path := script(`grep -q '"System.CPU\[0\].ICachePort"' || exit 3
echo "Exited @ 1 because read"
`)

		result, err := NewExecEngine(path, nil, nil, nil).
			Run(context.Background(), topo)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Cause).To(Equal("read"))
	})

	It("should pass arguments", func() {
		path := script(`cat > /dev/null
echo "Exited @ 7 because $1-$2"
`)

		result, err := NewExecEngine(path, []string{"a", "b"}, nil, nil).
			Run(context.Background(), topo)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Cause).To(Equal("a-b"))
	})

	It("should fail if the engine exits with an error", func() {
		path := script("cat > /dev/null\nexit 2\n")

		_, err := NewExecEngine(path, nil, nil, nil).
			Run(context.Background(), topo)

		Expect(err).To(BeAssignableToTypeOf(&EngineError{}))
		Expect(err.(*EngineError).Engine).To(Equal(path))
	})

	It("should fail if the engine reports no exit", func() {
		path := script("cat > /dev/null\necho hello\n")

		_, err := NewExecEngine(path, nil, nil, nil).
			Run(context.Background(), topo)

		Expect(err).To(MatchError(ContainSubstring("did not report an exit")))
	})

	It("should fail if the engine does not exist", func() {
		_, err := NewExecEngine("/no/such/engine", nil, nil, nil).
			Run(context.Background(), topo)

		Expect(err).To(BeAssignableToTypeOf(&EngineError{}))
	})
})
