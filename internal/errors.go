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
	"errors"
	"fmt"
)

var invalidStr = "is not valid"

var ErrInvalidShape = errors.New(fmt.Sprintf("array shape %s", invalidStr))
var ErrInvalidParameter = errors.New(fmt.Sprintf("distribution parameter %s", invalidStr))
var ErrShapeMismatch = errors.New("array shapes do not match")
