// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package commonmark implements the block-structure half of a [CommonMark]
// parser: it turns a Unicode document into a tree of block nodes (document,
// block quote, list, list item, heading, thematic break, code block, HTML
// block, paragraph) with leaf content left as raw strings for a separate
// inline-parsing pass.
//
// [CommonMark]: https://spec.commonmark.org/0.30/
package commonmark
