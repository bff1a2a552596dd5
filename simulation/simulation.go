package simulation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/sarchlab/ilptopo/datarecording"
	"github.com/sarchlab/ilptopo/monitoring"
	"github.com/sarchlab/ilptopo/topology"
)

// A Simulation connects a topology to an engine, a recorder and a monitor.
type Simulation struct {
	id     string
	engine Engine

	dataRecorder     datarecording.DataRecorder
	execRecorder     *datarecording.ExecRecorder
	topologyRecorder *topologyRecorder

	monitor     *monitoring.Monitor
	openBrowser bool
}

// ID returns the unique identifier of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder, or nil if recording is off.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor, or nil if monitoring is off.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// Run hands the topology to the engine. The topology is recorded and served
// before the engine starts.
func (s *Simulation) Run(
	ctx context.Context,
	t *topology.Topology,
) (Result, error) {
	if s.topologyRecorder != nil {
		s.topologyRecorder.record(t)
		s.execRecorder.Add("Topology", t.ID())
		s.execRecorder.Add("Engine", s.engine.Name())
	}

	var bar *monitoring.ProgressBar

	if s.monitor != nil {
		s.monitor.RegisterTopology(t)
		bar = s.monitor.CreateProgressBar(s.engine.Name(), 1)

		if s.openBrowser {
			if err := s.monitor.OpenBrowser(); err != nil {
				fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
			}
		}
	}

	result, err := s.engine.Run(ctx, t)

	status := result.String()
	if err != nil {
		status = err.Error()
	}

	if bar != nil {
		bar.Advance(status)
	}

	if s.execRecorder != nil {
		s.execRecorder.Add("Result", status)
	}

	return result, err
}

// Terminate writes the records and stops the monitor.
func (s *Simulation) Terminate() error {
	if s.monitor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.monitor.StopServer(ctx); err != nil {
			return err
		}
	}

	if s.dataRecorder != nil {
		s.execRecorder.End()

		if err := s.dataRecorder.Close(); err != nil {
			return err
		}
	}

	return nil
}

// Builder can be used to build a simulation.
type Builder struct {
	engine         Engine
	recordOn       bool
	outputFileName string
	monitorOn      bool
	monitorPort    int
	openBrowser    bool
}

// MakeBuilder creates a builder for a dry run without recording or
// monitoring.
func MakeBuilder() Builder {
	return Builder{}
}

// WithEngine sets the engine. The default engine is a DryRunEngine that
// writes to the standard output.
func (b Builder) WithEngine(e Engine) Builder {
	b.engine = e
	return b
}

// WithRecording turns on recording into name.sqlite3. An empty name
// generates a unique one.
func (b Builder) WithRecording(name string) Builder {
	b.recordOn = true
	b.outputFileName = name

	return b
}

// WithMonitoring turns on the monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser opens the monitoring page when the run starts.
func (b Builder) WithBrowser() Builder {
	b.openBrowser = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.openBrowser {
		panic("browser cannot be opened when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	s := &Simulation{
		id:          xid.New().String(),
		engine:      b.engine,
		openBrowser: b.openBrowser,
	}

	if s.engine == nil {
		s.engine = NewDryRunEngine(os.Stdout)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}

		if err := s.monitor.StartServer(); err != nil {
			return nil, err
		}
	}

	if b.recordOn {
		if err := b.startRecording(s); err != nil {
			if s.monitor != nil {
				_ = s.monitor.StopServer(context.Background())
			}

			return nil, err
		}
	}

	return s, nil
}

func (b Builder) startRecording(s *Simulation) error {
	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "ilptopo_" + s.id
	}

	recorder, err := datarecording.New(outputPath)
	if err != nil {
		return err
	}

	s.dataRecorder = recorder
	s.execRecorder = datarecording.NewExecRecorder(recorder)
	s.execRecorder.Start()
	s.topologyRecorder = newTopologyRecorder(recorder)

	return nil
}
