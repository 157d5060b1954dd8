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

package internal

import (
	"github.com/pkg/errors"
)

// ErrParameter is the cause of every error reporting a distribution
// parameter outside of its domain.
var ErrParameter = errors.New("invalid distribution parameter")

// ErrRange is the cause of every error reporting a requested sequence
// length that the bulk generator does not serve.
var ErrRange = errors.New("sequence length out of range")

// ErrDomain is the cause of every error reporting an argument outside
// of the domain of a special function.
var ErrDomain = errors.New("argument outside of function domain")
