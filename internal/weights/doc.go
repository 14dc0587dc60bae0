// Package weights reads the dense-layer parameters of a Keras model from a
// hierarchical weight container.
//
// Keras stores the weights of a Sequential model as
//
//	+ model_weights
//	|  + dense
//	|  |  + dense
//	|  |     + bias:0     float32 [out]
//	|  |     + kernel:0   float32 [in, out]
//	|  + dense_1
//	|  |  + dense_1
//	|  |     ...
//	+ optimizer_weights
//	   ...
//
// Read walks the children of model_weights and keeps every child that has
// exactly this doubled-name layout. Children of any other shape are
// skipped, since the same level may hold groups that are not layers.
//
// The container itself is accessed through the Container, Group and
// Dataset interfaces; package hdf5 provides the on-disk implementation.
package weights
