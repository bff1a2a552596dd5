package simulation

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("topologyRecorder", func() {
	var (
		mockCtrl *gomock.Controller
		recorder *MockDataRecorder
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		recorder = NewMockDataRecorder(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should create one table per row type", func() {
		for name, row := range RowTypes() {
			recorder.EXPECT().CreateTable(name, row)
		}

		newTopologyRecorder(recorder)
	})

	It("should insert every part of the topology and flush", func() {
		recorder.EXPECT().CreateTable(gomock.Any(), gomock.Any()).AnyTimes()
		tr := newTopologyRecorder(recorder)
		t := buildTopology(1)

		inserted := map[string]int{}
		var caches []CacheRow
		var processes []ProcessRow

		recorder.EXPECT().
			InsertData(gomock.Any(), gomock.Any()).
			Do(func(table string, entry any) {
				inserted[table]++

				switch row := entry.(type) {
				case CacheRow:
					Expect(row.TopologyID).To(Equal(t.ID()))
					caches = append(caches, row)
				case ProcessRow:
					processes = append(processes, row)
				}
			}).
			AnyTimes()
		recorder.EXPECT().Flush()

		tr.record(t)

		Expect(inserted[ComponentTable]).To(Equal(8))
		Expect(inserted[WireTable]).To(Equal(8))
		Expect(caches).To(HaveLen(3))
		Expect(caches[0].Level).To(Equal(t.Caches()[0].Level.String()))
		Expect(processes).To(HaveLen(1))
		Expect(processes[0].PID).To(Equal(100))
	})
})
