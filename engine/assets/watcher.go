package assets

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/crystalroom/engine/core"
)

// ConfigWatcher reloads a configuration file when it changes on disk and
// fires EVENT_CODE_CONFIG_RELOADED with the new *Config. Files that fail to
// load are logged and skipped; the previous config stays in effect.
type ConfigWatcher struct {
	path   string
	events *core.EventSystem

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewConfigWatcher(path string, events *core.EventSystem) (*ConfigWatcher, error) {
	if path == "" || events == nil {
		return nil, errors.New("config watcher needs a file path and an event system")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ConfigWatcher{
		path:     abs,
		events:   events,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Start watches the directory holding the file, so editors that save by
// renaming a temp file over it are still noticed.
func (cw *ConfigWatcher) Start() error {
	if err := cw.fsnotify.Add(filepath.Dir(cw.path)); err != nil {
		return err
	}
	cw.wg.Add(1)
	go cw.start()
	core.LogInfo("watching %s for changes", cw.path)
	return nil
}

func (cw *ConfigWatcher) start() {
	defer cw.wg.Done()
	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case err, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-cw.done:
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		core.LogError("config reload failed, keeping previous config: %s", err)
		return
	}
	core.LogDebug("config %s reloaded", cw.path)
	cw.events.Fire(cw, core.EventContext{
		Type: core.EVENT_CODE_CONFIG_RELOADED,
		Data: cfg,
	})
}

func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.done)
		cw.wg.Wait()
		err = cw.fsnotify.Close()
	})
	return err
}
