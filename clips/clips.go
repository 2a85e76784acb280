package clips

import (
	"sync"

	"mememaker-site/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusMetadata    Status = "metadata"
	StatusDownloading Status = "downloading"
	StatusClipping    Status = "clipping"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
)

// Job is one requested clip: a source URL plus the user's trim range.
// Start/stop are stored in integer milliseconds; the float seconds from the
// trim UI are rounded once at submission.
type Job struct {
	gorm.Model
	SessionID string `gorm:"index"` // anonymous browser/TUI session that owns the job
	URL       string
	Title     string
	Duration  float64 // source video length, seconds
	StartMS   uint
	StopMS    uint
	Status    Status
	Filename  string // produced clip, relative to the data dir
	Size      int64
	Error     string
}

func SetStatus(id uint, status Status) error {
	db := database.Get()
	log.Debugln("clip job", id, "status ->", status)
	if err := db.Model(&Job{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return err
	}

	var job Job
	if err := db.First(&job, id).Error; err == nil {
		Publish(job.SessionID, Event{JobID: id, Status: status, Error: job.Error})
	}
	return nil
}

func SetFailed(id uint, cause error) error {
	db := database.Get()
	log.Debugln("clip job", id, "failed:", cause)
	err := db.Model(&Job{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": StatusFailed, "error": cause.Error()}).Error
	if err != nil {
		return err
	}

	var job Job
	if err := db.First(&job, id).Error; err == nil {
		Publish(job.SessionID, Event{JobID: id, Status: StatusFailed, Error: job.Error})
	}
	return nil
}

// Event is a status change pushed to the owning session's SSE stream.
type Event struct {
	JobID  uint   `json:"job_id"`
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Queue struct {
	id uuid.UUID
	Ch chan Event
}

func newQueue() *Queue {
	return &Queue{
		id: uuid.Must(uuid.NewV7()),
		Ch: make(chan Event, 16),
	}
}

var listenersMu sync.Mutex
var listeners = map[string][]*Queue{}

func Subscribe(sessionID string) *Queue {
	listenersMu.Lock()
	defer listenersMu.Unlock()
	q := newQueue()
	listeners[sessionID] = append(listeners[sessionID], q)
	return q
}

func Unsubscribe(sessionID string, q *Queue) {
	listenersMu.Lock()
	defer listenersMu.Unlock()

	qs, ok := listeners[sessionID]
	if !ok {
		return
	}
	newQs := []*Queue{}
	for _, oldQ := range qs {
		if oldQ != q {
			newQs = append(newQs, oldQ)
		}
	}
	listeners[sessionID] = newQs
}

// Publish fans an event out to the session's subscribers. A subscriber
// with a full queue misses the event rather than stalling the worker.
func Publish(sessionID string, e Event) {
	listenersMu.Lock()
	defer listenersMu.Unlock()
	for _, q := range listeners[sessionID] {
		select {
		case q.Ch <- e:
		default:
		}
	}
}
