// Package reconcile builds a recruiter-scoped view over job postings and the
// candidates of both intake channels, resolving every candidate's job link to
// at most one canonical job reference.
package reconcile

import (
	"github.com/artem13815/recruit/pkg/candidate"
	"github.com/artem13815/recruit/pkg/vacancy"
)

// View is what a recruiter sees: their own jobs and the candidates relevant
// to them, each with a resolved job link or none.
type View struct {
	Jobs       []vacancy.Job      `json:"jobs"`
	Candidates []candidate.Record `json:"candidates"`
}

type index struct {
	byTitle map[string]vacancy.Job
	byID    map[int64]vacancy.Job
}

// Two owned jobs sharing a normalized title are ambiguous; the one indexed
// last wins. This is a known limitation kept deliberately stable.
func buildIndex(jobs []vacancy.Job) index {
	idx := index{
		byTitle: make(map[string]vacancy.Job, len(jobs)),
		byID:    make(map[int64]vacancy.Job, len(jobs)),
	}
	for _, j := range jobs {
		idx.byTitle[vacancy.NormalizeTitle(j.Title)] = j
		idx.byID[j.ID] = j
	}
	return idx
}

// Reconcile filters jobs and candidates for userID. Candidates are included
// when, in order of precedence, they are owned by the user, their free-text
// job title matches one of the user's job titles, or their linked job is one
// of the user's jobs. Input order is preserved.
func Reconcile(userID int64, jobs []vacancy.Job, channels ...[]candidate.Record) View {
	userJobs := make([]vacancy.Job, 0)
	for _, j := range jobs {
		if j.OwnedBy(userID) {
			userJobs = append(userJobs, j)
		}
	}
	idx := buildIndex(userJobs)

	var total int
	for _, ch := range channels {
		total += len(ch)
	}
	merged := make([]candidate.Record, 0, total)
	for _, ch := range channels {
		merged = append(merged, ch...)
	}

	out := make([]candidate.Record, 0)
	for _, c := range merged {
		if !idx.belongs(userID, c) {
			continue
		}
		c.Job = idx.resolve(c.Job)
		out = append(out, c)
	}
	return View{Jobs: userJobs, Candidates: out}
}

func (idx index) belongs(userID int64, c candidate.Record) bool {
	if c.OwnedBy(userID) {
		return true
	}
	switch c.Job.Kind() {
	case candidate.LinkTitle:
		title, _ := c.Job.Title()
		_, ok := idx.byTitle[vacancy.NormalizeTitle(title)]
		return ok
	case candidate.LinkJob:
		ref, _ := c.Job.Ref()
		_, ok := idx.byID[ref.ID]
		return ok
	}
	return false
}

// resolve maps a raw link onto the user's jobs. Display titles always come
// from the job index so a renamed job never shows its stale title.
func (idx index) resolve(link candidate.JobLink) candidate.JobLink {
	switch link.Kind() {
	case candidate.LinkTitle:
		title, _ := link.Title()
		if j, ok := idx.byTitle[vacancy.NormalizeTitle(title)]; ok {
			return candidate.RefLink(candidate.JobRef{ID: j.ID, Value: j.Title})
		}
	case candidate.LinkJob:
		ref, _ := link.Ref()
		if j, ok := idx.byID[ref.ID]; ok {
			return candidate.RefLink(candidate.JobRef{ID: ref.ID, Value: j.Title})
		}
	}
	return candidate.NoLink()
}
