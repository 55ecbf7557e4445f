// Package safe_close 提供多组件的协同关闭
package safe_close

import (
	"sync"
)

// SafeClose coordinates graceful shutdown across multiple components.
// SafeClose 协调多个组件的优雅关闭
// 每个组件通过 Attach 注册关闭处理函数，任何一方调用 SendCloseSignal
// 都会广播关闭信号，WaitClosed 阻塞到所有处理函数执行完毕
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

// NewSafeClose 创建 SafeClose 实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach 注册一个关闭处理函数并在独立 goroutine 中运行
// f 必须在完成清理后调用 done，并监听 closeSignal
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() {
		s.wg.Done()
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal 广播关闭信号，首个非 nil 错误会被记录
// 可以安全地多次调用
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed 阻塞直到所有关闭处理函数完成，返回首个关闭错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
