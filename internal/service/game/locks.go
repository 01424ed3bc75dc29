package game

import "sync"

// gameLock мьютекс игры и число горутин, которые его держат или ждут
type gameLock struct {
	sync.Mutex
	refs int
}

// gameLocks мьютексы игр, с которыми сейчас идёт работа.
// Запись удаляется, когда её отпускает последний владелец
type gameLocks struct {
	mtx   sync.Mutex
	locks map[string]*gameLock
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[string]*gameLock)}
}

// lock захватывает мьютекс игры и возвращает функцию освобождения
func (l *gameLocks) lock(gameID string) func() {
	l.mtx.Lock()
	gl, ok := l.locks[gameID]
	if !ok {
		gl = &gameLock{}
		l.locks[gameID] = gl
	}
	gl.refs++
	l.mtx.Unlock()

	gl.Lock()
	return func() {
		gl.Unlock()

		l.mtx.Lock()
		gl.refs--
		if gl.refs == 0 {
			delete(l.locks, gameID)
		}
		l.mtx.Unlock()
	}
}

// size число игр с активными мьютексами
func (l *gameLocks) size() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.locks)
}
