package tests

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
)

// upstream fakes the task, project and profile services on one mux.
type upstream struct {
	mu sync.Mutex

	tasks    map[string]map[string]any
	projects map[string]map[string]any
	profiles map[string]map[string]any

	// Project owner and collaborator sub-resources.
	owners        map[string]string
	collaborators map[string][]map[string]any

	profileCalls atomic.Int64
	failProfiles bool
	nextID       int
}

func newUpstream() *upstream {
	return &upstream{
		tasks:         map[string]map[string]any{},
		projects:      map[string]map[string]any{},
		profiles:      map[string]map[string]any{},
		owners:        map[string]string{},
		collaborators: map[string][]map[string]any{},
	}
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /task/{$}", u.ok)
	mux.HandleFunc("GET /project/{$}", u.ok)
	mux.HandleFunc("GET /user/{$}", u.ok)

	mux.HandleFunc("GET /task/all", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		list := make([]map[string]any, 0, len(u.tasks))
		for _, task := range u.tasks {
			list = append(list, task)
		}
		writeJSON(w, http.StatusOK, list)
	})
	mux.HandleFunc("GET /task/id/{id}", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		task, ok := u.tasks[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, task)
	})
	mux.HandleFunc("POST /task/new", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		u.mu.Lock()
		defer u.mu.Unlock()
		body["id"] = u.newID("t")
		u.tasks[body["id"].(string)] = body
		writeJSON(w, http.StatusCreated, []map[string]any{body})
	})
	mux.HandleFunc("DELETE /task/{id}", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		if _, ok := u.tasks[r.PathValue("id")]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		delete(u.tasks, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /project/{id}", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		project, ok := u.projects[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, project)
	})
	mux.HandleFunc("GET /project/{id}/owner", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		owner, ok := u.owners[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"profile_id": owner})
	})
	mux.HandleFunc("GET /project/{id}/collaborators", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()
		collaborators, ok := u.collaborators[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, collaborators)
	})
	mux.HandleFunc("POST /project/new", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		u.mu.Lock()
		defer u.mu.Unlock()
		body["id"] = u.newID("p")
		collaborators := make([]map[string]any, 0)
		if owner, ok := body["owner"].(string); ok {
			collaborators = append(collaborators, map[string]any{"profile_id": owner, "is_owner": true})
		}
		for _, id := range body["collaborators"].([]any) {
			collaborators = append(collaborators, map[string]any{"profile_id": id, "is_owner": false})
		}
		body["collaborators"] = collaborators
		u.projects[body["id"].(string)] = body
		writeJSON(w, http.StatusCreated, body)
	})

	mux.HandleFunc("GET /user/{id}", func(w http.ResponseWriter, r *http.Request) {
		u.profileCalls.Add(1)
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.failProfiles {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		profile, ok := u.profiles[r.PathValue("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	})

	return mux
}

func (u *upstream) ok(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (u *upstream) newID(prefix string) string {
	u.nextID++
	return prefix + "-" + strconv.Itoa(u.nextID)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
