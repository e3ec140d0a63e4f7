package asm

const labelPageSize = 128

// LabelPool hands out labels in pages so that a pass allocating many labels does
// not allocate each one separately. Labels are recycled on Reset: their fixup
// site slices keep their capacity for the next unit.
type LabelPool struct {
	pages            []*[labelPageSize]Label
	allocated, index int
}

// NewLabelPool returns an empty LabelPool.
func NewLabelPool() LabelPool {
	var ret LabelPool
	ret.Reset()
	return ret
}

// Allocated returns the number of labels handed out since the last Reset.
func (p *LabelPool) Allocated() int {
	return p.allocated
}

// Allocate returns an unbound label with no pending sites.
func (p *LabelPool) Allocate() *Label {
	if p.index == labelPageSize {
		if len(p.pages) == cap(p.pages) {
			p.pages = append(p.pages, new([labelPageSize]Label))
		} else {
			// Reuse a page released by Reset.
			i := len(p.pages)
			p.pages = p.pages[:i+1]
			if p.pages[i] == nil {
				p.pages[i] = new([labelPageSize]Label)
			}
		}
		p.index = 0
	}
	l := &p.pages[len(p.pages)-1][p.index]
	l.Reset()
	p.index++
	p.allocated++
	return l
}

// View returns the i-th allocated label.
func (p *LabelPool) View(i int) *Label {
	if i < 0 || i >= p.allocated {
		panic("BUG: label index out of range")
	}
	return &p.pages[i/labelPageSize][i%labelPageSize]
}

// Each calls fn for every allocated label in allocation order.
func (p *LabelPool) Each(fn func(*Label)) {
	for i := 0; i < p.allocated; i++ {
		fn(p.View(i))
	}
}

// Reset releases every label. Pointers handed out by Allocate must not be used afterwards.
func (p *LabelPool) Reset() {
	p.pages = p.pages[:0]
	p.index = labelPageSize
	p.allocated = 0
}
