/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object. A ModelBucket
stores models of a single type under keys prefixed with the
bucket name, so that different buckets never collide.
*/
package orm
