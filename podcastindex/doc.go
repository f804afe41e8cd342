// Package podcastindex is a typed client for the Podcast Index API
// (https://podcastindex.org). Every endpoint method signs its request
// with the key/secret pair supplied at construction and returns either
// a fully-typed response envelope or a single typed error; there is no
// caching, retrying, or rate limiting inside the client.
package podcastindex
