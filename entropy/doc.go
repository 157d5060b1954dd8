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

// Package entropy provides sources of uniformly distributed values
// in the interval [0, 1).
//
// Every sampler in package sample draws its randomness from a Source
// passed to its constructor. Crypto is the default choice, Keyed
// and Math give reproducible streams, and Scripted replays a fixed
// list of values, which makes samplers pure functions of the script.
package entropy
