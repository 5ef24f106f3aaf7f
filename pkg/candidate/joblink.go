package candidate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// LinkKind tags the three shapes a candidate's job link can take.
type LinkKind uint8

const (
	// LinkNone: the candidate is not tied to any job.
	LinkNone LinkKind = iota
	// LinkTitle: legacy free-text job title, matched against job titles.
	LinkTitle
	// LinkJob: a reference to a job record.
	LinkJob
)

func (k LinkKind) String() string {
	switch k {
	case LinkTitle:
		return "title"
	case LinkJob:
		return "job"
	default:
		return "none"
	}
}

// JobRef is a reference to a job together with its display title.
type JobRef struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// JobLink is a tagged variant over LinkNone, LinkTitle and LinkJob.
// The zero value is LinkNone.
type JobLink struct {
	kind  LinkKind
	title string
	ref   JobRef
}

func NoLink() JobLink { return JobLink{} }

// TitleLink builds a free-text link; blank titles collapse to NoLink.
func TitleLink(title string) JobLink {
	if strings.TrimSpace(title) == "" {
		return JobLink{}
	}
	return JobLink{kind: LinkTitle, title: title}
}

func RefLink(ref JobRef) JobLink { return JobLink{kind: LinkJob, ref: ref} }

func (l JobLink) Kind() LinkKind { return l.kind }

// Title returns the free-text title of a LinkTitle link.
func (l JobLink) Title() (string, bool) {
	return l.title, l.kind == LinkTitle
}

// Ref returns the job reference of a LinkJob link.
func (l JobLink) Ref() (JobRef, bool) {
	return l.ref, l.kind == LinkJob
}

// MarshalJSON keeps the wire shape of the record store:
// null, a plain string, or a one-element list of {id, value}.
func (l JobLink) MarshalJSON() ([]byte, error) {
	switch l.kind {
	case LinkTitle:
		return json.Marshal(l.title)
	case LinkJob:
		return json.Marshal([]JobRef{l.ref})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts every shape the intake channels send. Only the first
// entry of a list is meaningful; bare numeric ids are accepted as references.
func (l *JobLink) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = JobLink{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = TitleLink(s)
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			*l = JobLink{}
			return nil
		}
		ref, err := decodeRef(items[0])
		if err != nil {
			return err
		}
		*l = RefLink(ref)
		return nil
	default:
		ref, err := decodeRef(data)
		if err != nil {
			return err
		}
		*l = RefLink(ref)
		return nil
	}
}

func decodeRef(data json.RawMessage) (JobRef, error) {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		return JobRef{ID: id}, nil
	}
	var ref JobRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return JobRef{}, fmt.Errorf("unsupported job link: %s", string(data))
	}
	return ref, nil
}
