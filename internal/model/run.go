package model

// Run accumulates the regions and events of all files scanned in one analysis.
// A Run is owned by a single caller and is not safe for concurrent use.
type Run struct {
	Files     []string
	Regions   []Region
	Transfers []Transfer
	Syncs     []Sync

	fileIndex map[string]int
	seq       int
}

// NewRun returns an empty analysis run.
func NewRun() *Run {
	return &Run{
		fileIndex: make(map[string]int),
	}
}

// AddFile registers a scanned file and returns its scan order index.
// Registering the same path again returns the existing index.
func (r *Run) AddFile(path string) int {
	if idx, ok := r.fileIndex[path]; ok {
		return idx
	}
	idx := len(r.Files)
	r.Files = append(r.Files, path)
	r.fileIndex[path] = idx
	return idx
}

// FileIndex returns the scan order index of a file, or -1 if it is unknown.
func (r *Run) FileIndex(path string) int {
	idx, ok := r.fileIndex[path]
	if !ok {
		return -1
	}
	return idx
}

// AddRegion adds a declared VRAM region.
func (r *Run) AddRegion(region Region) {
	r.AddFile(region.File)
	r.Regions = append(r.Regions, region)
}

// AddTransfer adds a transfer event and stamps its discovery order.
func (r *Run) AddTransfer(transfer Transfer) {
	r.AddFile(transfer.File)
	r.seq++
	transfer.seq = r.seq
	r.Transfers = append(r.Transfers, transfer)
}

// AddSync adds a sync event and stamps its discovery order.
func (r *Run) AddSync(sync Sync) {
	r.AddFile(sync.File)
	r.seq++
	sync.seq = r.seq
	r.Syncs = append(r.Syncs, sync)
}
