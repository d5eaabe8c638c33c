// Package rules provides the built-in fixers for gocsfix.
//
// # Fixers
//
//   - logical_operators (risky): use && and || instead of and / or, or the
//     reverse with use_keywords.
//
//   - no_trailing_comma_in_singleline_array: drop the trailing comma of
//     arrays written on one line.
//
//   - no_whitespace_in_blank_line: strip indentation from blank lines.
//
//   - no_closing_tag: remove the closing ?> of files that are pure PHP.
//
//   - php_unit_strict (risky): assertEquals and friends become their
//     strict assertSame counterparts.
//
//   - phpdoc_no_alias_tag: replace alias PHPDoc tags such as @type or
//     @link with their canonical names.
//
//   - phpdoc_to_comment: turn docblocks that do not document a structural
//     element into plain comments.
//
//   - return_type_declaration: normalize spacing around the colon of a
//     return type.
//
//   - visibility_required: add an explicit visibility to class members.
//
// Fixers are registered with fixer.DefaultRegistry via RegisterAll.
package rules
