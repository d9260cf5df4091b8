package service

import "quantor/domain"

// fakeDisplay records every call the controllers make.
type fakeDisplay struct {
	values        map[domain.Field]string
	invalid       map[domain.Field]bool
	eoqText       string
	totalText     string
	notifications []string
	blocks        []string
	blockIDs      []string
	appearance    domain.Appearance
	applyCalls    int
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		values:  map[domain.Field]string{},
		invalid: map[domain.Field]bool{},
	}
}

func (d *fakeDisplay) SetFieldValue(f domain.Field, v string) { d.values[f] = v }
func (d *fakeDisplay) MarkInvalid(f domain.Field, invalid bool) { d.invalid[f] = invalid }

func (d *fakeDisplay) ShowResult(eoqText, totalText string) {
	d.eoqText = eoqText
	d.totalText = totalText
}

func (d *fakeDisplay) ClearResult() {
	d.eoqText = ""
	d.totalText = ""
}

func (d *fakeDisplay) Notify(msg string) { d.notifications = append(d.notifications, msg) }

func (d *fakeDisplay) AppendLogBlock(id, block string) {
	d.blockIDs = append(d.blockIDs, id)
	d.blocks = append(d.blocks, block)
}

func (d *fakeDisplay) RemoveLogBlock(id string) {
	for i, existing := range d.blockIDs {
		if existing == id {
			d.blockIDs = append(d.blockIDs[:i], d.blockIDs[i+1:]...)
			d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
			return
		}
	}
}

func (d *fakeDisplay) RemoveLogBlocks() {
	d.blockIDs = nil
	d.blocks = nil
}

func (d *fakeDisplay) ApplyTheme(a domain.Appearance) {
	d.appearance = a
	d.applyCalls++
}

func (d *fakeDisplay) anyInvalid() bool {
	for _, v := range d.invalid {
		if v {
			return true
		}
	}
	return false
}
