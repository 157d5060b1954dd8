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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface.
// Every sampler draws its randomness from an entropy.Source
// given to its constructor and returns float64 values; discrete
// distributions return integer valued floats.
//
// Uniform and Normal are primitives and do not check their
// parameters when sampling. The remaining samplers are built on
// top of them and refuse to sample with invalid parameters.
// All samplers implement Validator, which package data uses
// to check parameters before generating a whole sequence.
package sample
