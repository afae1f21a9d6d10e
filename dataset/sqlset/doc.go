/*
Package sqlset reads datasets from SQL database tables.

Every column of the table but the one named "id" becomes a column of the
dataset, in the order the database lists them, except for the label column,
which is moved to the last position. Cell values are turned into tokens and
parsed as for any other textual source, so numeric columns become continuous
features unless features are given for them.

Adapters in the subpackages provide the connections to the supported
database engines.
*/
package sqlset
