// Package correlate joins the socket-table snapshot with the process-table
// snapshot. The two are taken at slightly different instants, so an inode
// with no visible holder is an expected outcome, not an error.
package correlate

import "github.com/portscout/portscout/pkg/model"

// Index resolves a socket inode to its canonical owning pid.
type Index interface {
	Owner(inode uint64) (pid int, ok bool)
}

// MetaFunc fetches process metadata for one pid.
type MetaFunc func(pid int) model.ProcessMeta

// Enrich produces one output record per input socket, in input order. When
// the index resolves an owner, metadata is fetched through fetch exactly once
// per pid; a process holding many sockets costs a single fetch.
func Enrich(sockets []model.SocketRecord, ix Index, fetch MetaFunc) []model.EnrichedRecord {
	cache := make(map[int]model.ProcessMeta)

	records := make([]model.EnrichedRecord, 0, len(sockets))
	for _, s := range sockets {
		rec := model.EnrichedRecord{Socket: s}
		if pid, ok := ix.Owner(s.Inode); ok {
			meta, seen := cache[pid]
			if !seen {
				meta = fetch(pid)
				cache[pid] = meta
			}
			rec.Owner = &model.Owner{PID: pid, Meta: meta}
		}
		records = append(records, rec)
	}
	return records
}
