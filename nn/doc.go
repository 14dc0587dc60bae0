// Copyright 2026 The mf Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn runs the forward pass of a chain of dense layers.
//
// # Overview
//
// Every layer computes out = max(0, bias + kernelᵀ·input) with the kernel
// stored [in, out] row-major, exactly as Keras writes it. ReLU follows every
// layer, including the last; classification takes the arg-max of the final
// vector, so the missing softmax does not change the prediction.
//
// # Basic Usage
//
//	layers, _ := weights.LoadHDF5("model.h5")
//	model, err := nn.FromCollection(layers, "dense", "dense_1", "dense_2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	scores, err := model.Forward(image)
//	digit := nn.Argmax(scores)
package nn
