// internal/sched/weights.go

package sched

// Nice value bounds, inclusive. Lower nice means higher priority.
const (
	MinNice = -20
	MaxNice = 19
)

// Nice0 is the load weight of a nice-0 task and the numerator of every
// vruntime scaling factor.
const Nice0 = 1024

// niceToWeight maps nice+20 to load weight. The values are the kernel's
// sched_prio_to_weight table: each nice step changes CPU share by ~10%.
var niceToWeight = [40]uint64{
	88761, 71755, 56483, 46273, 36291,
	29154, 23254, 18705, 14949, 11916,
	9548, 7620, 6100, 4904, 3906,
	3121, 2501, 1991, 1586, 1277,
	1024, 820, 655, 526, 423,
	335, 272, 215, 172, 137,
	110, 87, 70, 56, 45,
	36, 29, 23, 18, 15,
}

// NiceToWeight returns the load weight for a nice value. The caller must
// have clamped nice into [MinNice, MaxNice].
func NiceToWeight(nice int) uint64 {
	return niceToWeight[nice+20]
}
