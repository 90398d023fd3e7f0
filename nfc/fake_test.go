package nfc

import "errors"

var errTimeout = errors.New("can't read data after 2000 loops")

// cycle is what the fake reader answers for one poll.
type cycle struct {
	present bool
	uid     UID
	sak     byte
	err     error
}

func absent() cycle {
	return cycle{}
}

func present(uid UID, sak byte) cycle {
	return cycle{present: true, uid: uid, sak: sak}
}

func failing(err error) cycle {
	return cycle{present: true, err: err}
}

type fakeReader struct {
	cycles  []cycle
	current int
	halts   int
	closed  bool
}

func newFakeReader(cycles ...cycle) *fakeReader {
	return &fakeReader{cycles: cycles, current: -1}
}

func (f *fakeReader) IsNewCardPresent() bool {
	f.current++
	if f.current >= len(f.cycles) {
		return false
	}
	return f.cycles[f.current].present
}

func (f *fakeReader) ReadCardSerial() (UID, byte, error) {
	c := f.cycles[f.current]
	if c.err != nil {
		return nil, 0, c.err
	}
	return c.uid.Clone(), c.sak, nil
}

func (f *fakeReader) Halt() error {
	f.halts++
	return nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

type recordingSink struct {
	events []Event
	err    error
}

func (r *recordingSink) Handle(e Event) error {
	r.events = append(r.events, e)
	return r.err
}
