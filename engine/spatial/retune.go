package spatial

// Retune re-evaluates the bucket edge length from the index's observed
// density, per SPEC_FULL.md §4. It changes only bucketSize and leaves the
// stored buckets keyed by the old size, so it should be called once per
// tick immediately before Rebuild; it only acts every retuneInterval
// ticks so a single noisy tick cannot thrash the bucket size.
func (idx *Index) Retune(retuneInterval, highWatermark, lowWatermark, minBucketSize int) {
	idx.ticksSinceRetune++
	if idx.ticksSinceRetune < retuneInterval {
		return
	}
	idx.ticksSinceRetune = 0

	total, maxBucket := idx.densityStats()
	bucketCount := len(idx.buckets)
	if bucketCount == 0 {
		return
	}

	if maxBucket > highWatermark {
		idx.bucketSize *= 2
		idx.lowWatermarkHits = 0
		return
	}

	avg := float64(total) / float64(bucketCount)
	if avg < float64(lowWatermark) {
		idx.lowWatermarkHits++
		if idx.lowWatermarkHits >= 2 && idx.bucketSize > minBucketSize {
			idx.bucketSize /= 2
			if idx.bucketSize < minBucketSize {
				idx.bucketSize = minBucketSize
			}
			idx.lowWatermarkHits = 0
		}
	} else {
		idx.lowWatermarkHits = 0
	}
}

// densityStats returns the total indexed population and the largest
// single bucket's population, the two inputs Retune acts on.
func (idx *Index) densityStats() (total, maxBucket int) {
	for _, b := range idx.buckets {
		total += len(b)
		if len(b) > maxBucket {
			maxBucket = len(b)
		}
	}
	return
}
