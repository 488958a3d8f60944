/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package distribution provides a uniform way of sampling arrays
// from a family of probability distributions.
//
// A Distribution is an immutable set of parameters tagged with its
// Kind. Sample looks the kind up in a table of builder pairs and calls
// the column-wise builder or the full 2D builder depending on the
// requested Mode; this is the only difference between the two modes.
// New kinds are added by extending the table with another pair.
//
// Distributions hold no randomness of their own: every call to Sample
// receives the source to draw from, so a fixed seed reproduces the
// output and concurrent callers can each use their own source.
package distribution
