// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package weights reads the dense layers of a Keras model from its weight
// file.
//
// # Overview
//
// Keras stores every layer under model_weights/<name>/<name>/ with a rank-1
// bias:0 dataset of length O and a rank-2 kernel:0 dataset of shape [I, O].
// Children of model_weights without that layout (flatten, dropout, layers
// with other parameter names) are skipped. A file without model_weights is
// rejected with *ContainerFormatError.
//
// # Basic Usage
//
//	layers, err := weights.LoadHDF5("model.h5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range layers.Describe() {
//	    fmt.Println(line) // dense 784→128
//	}
//
// Other container formats plug in through the Container interface and Read.
package weights
