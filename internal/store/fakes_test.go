package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-syncml/models"
)

// fakePlugin is an in-memory StoragePlugin. Items are keyed "local-N".
type fakePlugin struct {
	maxObjectSize int64
	items         map[string][]byte
	addStatus     map[string]models.PluginStatus // by staged key
	existsErr     error
	next          int

	addCalls     [][]models.StorageItem
	replaceCalls [][]models.StorageItem
	deleteCalls  [][]string
}

func newFakePlugin() *fakePlugin {
	return &fakePlugin{
		items:     make(map[string][]byte),
		addStatus: make(map[string]models.PluginStatus),
	}
}

func (p *fakePlugin) SourceURI() string    { return "./fake" }
func (p *fakePlugin) MaxObjectSize() int64 { return p.maxObjectSize }

func (p *fakePlugin) Exists(_ context.Context, key string) (bool, error) {
	if p.existsErr != nil {
		return false, p.existsErr
	}
	_, ok := p.items[key]
	return ok, nil
}

func (p *fakePlugin) AddItems(_ context.Context, items []models.StorageItem) []models.PluginResult {
	p.addCalls = append(p.addCalls, items)
	out := make([]models.PluginResult, len(items))
	for i, item := range items {
		if status, ok := p.addStatus[item.Key]; ok {
			out[i] = models.PluginResult{Status: status}
			continue
		}
		p.next++
		key := fmt.Sprintf("local-%d", p.next)
		p.items[key] = item.Data
		out[i] = models.PluginResult{Key: key, Status: models.PluginOK}
	}
	return out
}

func (p *fakePlugin) ReplaceItems(_ context.Context, items []models.StorageItem) []models.PluginResult {
	p.replaceCalls = append(p.replaceCalls, items)
	out := make([]models.PluginResult, len(items))
	for i, item := range items {
		out[i].Key = item.Key
		if _, ok := p.items[item.Key]; !ok {
			out[i].Status = models.PluginNotFound
			continue
		}
		p.items[item.Key] = item.Data
	}
	return out
}

func (p *fakePlugin) DeleteItems(_ context.Context, keys []string) []models.PluginResult {
	p.deleteCalls = append(p.deleteCalls, keys)
	out := make([]models.PluginResult, len(keys))
	for i, key := range keys {
		out[i].Key = key
		if _, ok := p.items[key]; !ok {
			out[i].Status = models.PluginNotFound
			continue
		}
		delete(p.items, key)
	}
	return out
}

// fakeResolver reports a conflict for every key in conflicts.
type fakeResolver struct {
	conflicts map[string]bool
	localWins bool
}

func (r *fakeResolver) IsConflict(localKey string, _ bool) bool { return r.conflicts[localKey] }
func (r *fakeResolver) LocalSideWins() bool                     { return r.localWins }
