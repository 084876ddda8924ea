// Package job defines the delivery job aggregate, the delivery-relevant
// subset of a marketplace order.
//
// A job enters the dispatch pool when a lab marks it ready for pickup and
// leaves it the moment one courier's claim commits. The aggregate maintains
// the core invariant that a courier reference is present exactly when the
// status is past Ready, and that both always change together.
package job
