package opref

import "sync"

// verifiedEntries is the raw table of operator versions with a verified
// reference implementation. It is kept as recorded, defects included, and is
// only ever read through Verified.
var verifiedEntries = []string{
	"Abs-1",
	"Acos-1",
	"Add-1",
	"Asin-1",
	"Assign-6",
	"AvgPool-1",
	"BatchNormInference-5",
	"BinaryConvolution-1",
	"Broadcast-1",
	"Broadcast-3",
	"Bucketize-3",
	"CTCGreedyDecoder-1",
	"CTCGreedyDecoderSeqLen-6",
	"Concat-1",
	"ConvertLike-1",
	"Convolution-1",
	"Constant-1",
	"DeformableConvolution-1",
	"DetectionOutput-1",
	"Divide-1",
	"ExperimentalDetectronDetectionOutput-6",
	"ExperimentalDetectronGenerateProposalsSingleImage-6",
	"ExperimentalDetectronPriorGridGenerator-6",
	"ExperimentalDetectronROIFeatureExtractor-6",
	"ExperimentalDetectronTopKROIs-6",
	// Recorded without a separator upstream; Normalize splits it.
	"FloorMod-1GRUSequence-5",
	"Gather-1",
	"GatherElements-6",
	"GatherND-5",
	"Gelu-7",
	"GroupConvolution-1",
	"GroupConvolutionBackpropData-1",
	"GRUSequence-5",
	"HSigmoid-5",
	"HSwish-4",
	"HardSigmoid-1",
	"Interpolate-4",
	"LRN-1",
	"LSTMCell-4",
	"LSTMSequence-5",
	"LogSoftmax-5",
	"Loop-5",
	"MVN-6",
	"Maximum-1",
	"MaxPool-1",
	"Mish-4",
	"Multiply-1",
	"NonMaxSuppression-4",
	"NonMaxSuppression-5",
	"PSROIPooling-1",
	"Proposal-1",
	"Proposal-4",
	"RNNSequence-5",
	"ROIAlign-3",
	"ROIPooling-2",
	"Range-1",
	"Range-4",
	"ReadValue-6",
	"ReduceL1-4",
	"ReduceL2-4",
	"ReduceMean-1",
	"RegionYOLO-1",
	"Relu-1",
	"ReorgYOLO-2",
	"Round-5",
	"ScatterNDUpdate-4",
	"ShapeOf-1",
	"ShapeOf-3",
	"Sigmoid-1",
	"Sin-1",
	"SoftPlus-4",
	"Softmax-1",
	"Split-1",
	"StridedSlice-1",
	"Subtract-1",
	"Swish-4",
	"Tile-1",
	"TopK-1",
	"TopK-3",
	"Transpose-1",
}

var verified = sync.OnceValue(func() *Registry {
	return MustNew(verifiedEntries)
})

// Verified returns the built-in registry. It is built on first use and shared
// by all callers. A malformed table entry panics here.
func Verified() *Registry {
	return verified()
}

// VerifiedEntries returns a copy of the raw built-in table, before
// normalization.
func VerifiedEntries() []string {
	out := make([]string, len(verifiedEntries))
	copy(out, verifiedEntries)
	return out
}
