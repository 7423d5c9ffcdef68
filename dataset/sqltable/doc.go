/*
Package sqltable reads and writes dataset.Tables from/to SQL
database tables.

Every feature is stored on a TEXT column named after it, in
the same order as the table's header. A column named "id"
is reserved for the row identifier: tables are created with
it, rows are read in its order and it is never read as a
feature.

Specific databases are supported through Adapters, see the
sqlite3adapter and pgadapter packages.
*/
package sqltable
