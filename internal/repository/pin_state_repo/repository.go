package pin_state_repo

import (
	"bowling_backend/internal/repository"
	"bowling_backend/pkg/bowling"
	"sync"
)

// StateRepo трекеры ввода по кеглям для игр в процессе.
// Живут в памяти процесса: после рестарта сервис восстанавливает их по фреймам игры
type StateRepo struct {
	mtx      sync.RWMutex
	trackers map[string]*bowling.PinTracker
}

// NewPinStateRepository Конструктор пустого хранилища трекеров
func NewPinStateRepository() repository.PinStateRepository {
	return &StateRepo{
		trackers: make(map[string]*bowling.PinTracker),
	}
}

// Get трекер игры, если он уже есть в памяти
func (r *StateRepo) Get(gameID string) (*bowling.PinTracker, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	t, ok := r.trackers[gameID]
	return t, ok
}

// Set сохраняет трекер игры
func (r *StateRepo) Set(gameID string, tracker *bowling.PinTracker) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.trackers[gameID] = tracker
}

// Delete забывает трекер удалённой или очищенной игры
func (r *StateRepo) Delete(gameID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.trackers, gameID)
}
