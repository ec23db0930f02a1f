package weights

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/2beens/gymplates/internal/plates"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte             = 1024 * 1024
	inventoryCacheExpire = 10 * 60 // seconds
)

// InventoryCache keeps each user's plate inventory in memory between writes.
// Every Invalidate bumps the user's generation, so a read that started before
// a write can not put its stale result back with SetIfGeneration.
type InventoryCache struct {
	cache *freecache.Cache

	mu          sync.Mutex
	generations map[string]uint64
}

func NewInventoryCache(sizeMB int) *InventoryCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &InventoryCache{
		cache:       freecache.NewCache(sizeMB * megabyte),
		generations: make(map[string]uint64),
	}
}

func inventoryCacheKey(userID string) []byte {
	return []byte(fmt.Sprintf("inventory::%s", userID))
}

func (c *InventoryCache) Get(userID string) (plates.Inventory, bool) {
	inventoryBytes, err := c.cache.Get(inventoryCacheKey(userID))
	if err != nil {
		return nil, false
	}

	var inventory plates.Inventory
	if err := json.Unmarshal(inventoryBytes, &inventory); err != nil {
		log.Errorf("unmarshal cached inventory for user %s: %s", userID, err)
		return nil, false
	}
	return inventory, true
}

func (c *InventoryCache) Set(userID string, inventory plates.Inventory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(userID, inventory)
}

// Generation is taken before loading an inventory from the store.
func (c *InventoryCache) Generation(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[userID]
}

// SetIfGeneration caches the inventory only if no Invalidate happened for the
// user since generation was taken.
func (c *InventoryCache) SetIfGeneration(userID string, inventory plates.Inventory, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != generation {
		return false
	}
	c.set(userID, inventory)
	return true
}

func (c *InventoryCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[userID]++
	c.cache.Del(inventoryCacheKey(userID))
}

func (c *InventoryCache) set(userID string, inventory plates.Inventory) {
	if inventory == nil {
		inventory = plates.Inventory{}
	}
	inventoryBytes, err := json.Marshal(inventory)
	if err != nil {
		log.Errorf("marshal inventory for user %s: %s", userID, err)
		return
	}
	if err := c.cache.Set(inventoryCacheKey(userID), inventoryBytes, inventoryCacheExpire); err != nil {
		log.Errorf("set inventory cache for user %s: %s", userID, err)
	}
}
