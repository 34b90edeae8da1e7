// Package cache provides the bounded LRU cache that keeps recently
// rendered rasters, so that dragging back over a hue does not repaint the
// whole square.
//
//	c := cache.New[key, *Raster](8)
//	r := c.GetOrCreate(k, func() *Raster { return render(k) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
